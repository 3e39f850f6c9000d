// Command tokenize is a small demonstration binary for the urlparser
// and htmltoken packages. It is ambient tooling only: the library
// packages it drives remain pure in-memory transformers with no file,
// network, or environment dependency of their own.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/musasabibyun/sample-browser-application/htmltoken"
	"github.com/musasabibyun/sample-browser-application/urlparser"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	url := flag.String("url", "", "an http:// URL to split into host/port/path/searchpart")
	html := flag.String("html", "", "an HTML fragment to tokenize")
	scriptData := flag.Bool("script-data", false, "start the tokenizer in the script-data state")
	flag.Parse()

	if *url == "" && *html == "" {
		logger.Error("nothing to do: pass -url and/or -html")
		os.Exit(2)
	}

	if *url != "" {
		u, err := urlparser.Parse(*url)
		if err != nil {
			logger.Error("url parse failed", slog.String("url", *url), slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Printf("host=%q port=%q path=%q searchpart=%q\n", u.Host, u.Port, u.Path, u.Searchpart)
	}

	if *html != "" {
		tz := htmltoken.NewTokenizer(*html)
		if *scriptData {
			tz.EnterScriptData()
		}
		for {
			tok, ok := tz.Next()
			if !ok {
				break
			}
			printToken(tok)
		}
	}
}

func printToken(tok htmltoken.Token) {
	switch tok.Type {
	case htmltoken.StartTagToken:
		fmt.Printf("StartTag tag=%q self_closing=%t attrs=%v\n", tok.Tag, tok.SelfClosing, tok.Attributes)
	case htmltoken.EndTagToken:
		fmt.Printf("EndTag tag=%q\n", tok.Tag)
	case htmltoken.CharToken:
		fmt.Printf("Char %q\n", tok.Char)
	case htmltoken.EOFToken:
		fmt.Println("Eof")
	}
}
