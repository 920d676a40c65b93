package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var (
	firstNames = []string{"Matt", "Kim", "Kanye", "Barack", "Hans", "Élodie", "Zoë", "Adam"}
	lastNames  = []string{"Damon", "Wexler", "West", "Obama", "Zimmer", "Ünal", "Li", "West"}
)

// Generates roster fixtures for manual runs of the people CLI:
// valid rosters, a malformed one and two binary files the loader must refuse.
func main() {
	outputDir := flag.String("out", "./test_data", "Destination directory")
	size := flag.Int("size", 20, "Number of names in roster.txt")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create %s: %v\n", *outputDir, err)
		os.Exit(1)
	}

	names := genNames(*size)
	steps := []struct {
		file string
		gen  func(path string) error
	}{
		{"roster.txt", func(path string) error { return writeLines(path, names, "\n") }},
		{"roster_crlf.txt", func(path string) error { return writeLines(path, names, "\r\n") }},
		{"malformed.txt", func(path string) error { return writeLines(path, []string{"Kanye West", "Cher"}, "\n") }},
		{"roster.pdf", func(path string) error { return genPDF(path, names) }},
		{"roster.png", genImage},
	}

	for _, step := range steps {
		path := filepath.Join(*outputDir, step.file)
		if err := step.gen(path); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed for %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s\n", path)
	}
}

// genNames pairs first and last names round-robin, shifting the last name
// every full cycle so pairs do not repeat too early.
func genNames(size int) []string {
	names := make([]string, 0, size)
	for i := 0; i < size; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i+i/len(firstNames))%len(lastNames)]
		names = append(names, first+" "+last)
	}
	return names
}

func writeLines(path string, lines []string, newline string) error {
	content := strings.Join(lines, newline) + newline
	return os.WriteFile(path, []byte(content), 0o644)
}

// genPDF renders the roster in a PDF, the loader must refuse it even though it lists names.
func genPDF(path string, names []string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 20, "Roster")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, strings.Join(names, "\n"), "", "", false)
	return pdf.OutputFileAndClose(path)
}

func genImage(path string) error {
	width, height := 80, 60
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 255), G: 100, B: 200, A: 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
