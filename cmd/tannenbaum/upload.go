package main

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/ncruces/zenity"
)

// pickPhoto opens the native file dialog, decodes the chosen image and
// delivers it on out. Runs on its own goroutine: the dialog blocks for
// as long as the user browses, and the frame loop must not. Only fully
// decoded images are sent
func pickPhoto(out chan<- image.Image) {
	path, err := zenity.SelectFile(
		zenity.Title("Add Photo"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("upload: dialog failed: %v", err)
		}
		return
	}

	img, err := loadImage(path)
	if err != nil {
		log.Printf("upload: %s: %v", path, err)
		return
	}

	select {
	case out <- img:
	default:
		log.Printf("upload: queue full, dropping %s", path)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
