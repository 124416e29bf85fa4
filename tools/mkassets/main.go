// Command mkassets converts PNG textures to the farbfeld files the
// engine loads at runtime. Point it at a directory of source images:
//
//	mkassets -in textures/src -out assets
//
// Every .png becomes a .ff with the same base name.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gridcast/internal/farbfeld"
)

func main() {
	in := flag.String("in", ".", "directory of source PNG images")
	out := flag.String("out", "assets", "directory for converted farbfeld files")
	flag.Parse()

	entries, err := os.ReadDir(*in)
	if err != nil {
		log.Fatalf("reading source directory: %v", err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	converted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		src := filepath.Join(*in, entry.Name())
		dst := filepath.Join(*out, strings.TrimSuffix(entry.Name(), ".png")+".ff")
		if err := convert(src, dst); err != nil {
			log.Fatalf("converting %s: %v", entry.Name(), err)
		}
		fmt.Printf("%s -> %s\n", src, dst)
		converted++
	}
	if converted == 0 {
		log.Fatalf("no .png files found in %s", *in)
	}
}

func convert(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding png: %w", err)
	}

	ff := fromImage(img)
	outFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := farbfeld.Encode(outFile, ff); err != nil {
		outFile.Close()
		return fmt.Errorf("encoding farbfeld: %w", err)
	}
	return outFile.Close()
}

func fromImage(img image.Image) *farbfeld.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	ff := &farbfeld.Image{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, w*h*4),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			ff.Pix[i] = uint16(r)
			ff.Pix[i+1] = uint16(g)
			ff.Pix[i+2] = uint16(b)
			ff.Pix[i+3] = uint16(a)
			i += 4
		}
	}
	return ff
}
