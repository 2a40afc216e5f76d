package assets

import (
	"fmt"
	"os"

	"dot-smash/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// BuiltinFont is how the bundled face is named in errors and logs.
const BuiltinFont = "builtin:goregular"

// AssetLoadError means a font could not be loaded. Fatal at startup.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load font %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// FontSet holds one face per HUD text size.
type FontSet struct {
	Source    string
	Response  font.Face
	Remaining font.Face
	GameOver  font.Face
	Average   font.Face
}

// LoadFonts reads a TTF/OTF file and builds every face the HUD needs.
// An empty path selects the bundled Go Regular font.
func LoadFonts(path string) (*FontSet, error) {
	source := path
	data := goregular.TTF
	if path == "" {
		source = BuiltinFont
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &AssetLoadError{Path: path, Err: err}
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, &AssetLoadError{Path: source, Err: err}
	}

	fs := &FontSet{Source: source}
	faces := []struct {
		dst  *font.Face
		size float64
	}{
		{&fs.Response, config.ResponseFontSize},
		{&fs.Remaining, config.RemainingFontSize},
		{&fs.GameOver, config.GameOverFontSize},
		{&fs.Average, config.AverageFontSize},
	}
	for _, f := range faces {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     config.FontDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.Close()
			return nil, &AssetLoadError{Path: source, Err: err}
		}
		*f.dst = face
	}
	return fs, nil
}

// Close освобождает все загруженные начертания.
func (fs *FontSet) Close() {
	for _, f := range []font.Face{fs.Response, fs.Remaining, fs.GameOver, fs.Average} {
		if f != nil {
			f.Close()
		}
	}
}
