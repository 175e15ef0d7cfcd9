package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/pdfium-runtime/document"
	"github.com/wippyai/pdfium-runtime/gate"
)

var metaTags = []string{"Title", "Author", "Subject", "Keywords", "Creator", "Producer", "CreationDate", "ModDate"}

func main() {
	var (
		pdfFile     = flag.String("pdf", "", "Path to PDF file")
		password    = flag.String("password", "", "Document password")
		libDir      = flag.String("libdir", "", "Directory containing the pdfium shared library")
		skia        = flag.Bool("skia", false, "Select the Skia renderer")
		meta        = flag.Bool("meta", false, "Print document metadata")
		pages       = flag.Bool("pages", false, "Print per-page dimensions")
		text        = flag.Int("text", -1, "Extract text from the given page (zero-based), -1 for all pages")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *pdfFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: pdfrun -pdf <file.pdf> [-password pw] [-meta] [-pages] [-text n]")
		fmt.Fprintln(os.Stderr, "       pdfrun -pdf <file.pdf> -i  (interactive mode)")
		os.Exit(1)
	}

	if *libDir != "" {
		gate.SetLibraryLocation(*libDir)
	}
	if *skia {
		gate.SetUseSkiaRenderer(true)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*pdfFile, *password); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*pdfFile, *password, *meta, *pages, *text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(pdfFile, password string, meta, pages bool, textPage int) error {
	doc, err := document.Open(pdfFile, password)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	count := doc.PageCount()
	fmt.Printf("Document: %s\n", pdfFile)
	fmt.Printf("Pages: %d\n", count)
	if v, ok := doc.FileVersion(); ok {
		fmt.Printf("PDF version: %d.%d\n", v/10, v%10)
	}
	fmt.Printf("Permissions: %#x\n", doc.Permissions())

	if meta {
		fmt.Printf("\nMetadata:\n")
		for _, tag := range metaTags {
			if v := doc.Metadata(tag); v != "" {
				fmt.Printf("  %-12s %s\n", tag+":", v)
			}
		}
	}

	if pages {
		fmt.Printf("\nPage dimensions (points):\n")
		for i := 0; i < count; i++ {
			page, err := doc.Page(i)
			if err != nil {
				return fmt.Errorf("load page %d: %w", i, err)
			}
			fmt.Printf("  page %d: %.2f x %.2f\n", i, page.Width(), page.Height())
			page.Close()
		}
	}

	if textPage >= 0 || flagPassed("text") {
		first, last := textPage, textPage
		if textPage < 0 {
			first, last = 0, count-1
		}
		for i := first; i <= last; i++ {
			page, err := doc.Page(i)
			if err != nil {
				return fmt.Errorf("load page %d: %w", i, err)
			}
			content, err := page.Text()
			page.Close()
			if err != nil {
				return fmt.Errorf("extract text from page %d: %w", i, err)
			}
			fmt.Printf("\n--- page %d ---\n%s\n", i, strings.TrimRight(content, "\n"))
		}
	}

	return nil
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}
