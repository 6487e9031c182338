package effects

import (
	"bytes"
	"fmt"
	"sync"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// loadFont parses the embedded Go Regular face once. Stickers and the banner
// share the same source at different sizes.
func loadFont() error {
	fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			fontErr = fmt.Errorf("parse embedded font: %w", err)
			return
		}
		fontSource = src
	})
	return fontErr
}

func fontFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: fontSource, Size: size}
}
