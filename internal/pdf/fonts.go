package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FontFiles are the paths of an Arabic-capable TrueType family. Bold may be
// empty, in which case the regular face is used for bold text too.
type FontFiles struct {
	Regular string
	Bold    string
}

// FontResolver locates font files on the host.
type FontResolver interface {
	Resolve() (FontFiles, error)
}

var ErrFontNotFound = errors.New("no arabic-capable font found")

// PathResolver returns the first candidate whose regular face exists.
type PathResolver struct {
	Candidates []FontFiles
	exists     func(path string) bool
}

// NewPathResolver checks dir first, then the bundled ./fonts directory,
// then well-known system locations.
func NewPathResolver(dir string) *PathResolver {
	var candidates []FontFiles
	if dir != "" {
		candidates = append(candidates, freeSerifIn(dir))
	}
	candidates = append(candidates,
		freeSerifIn("fonts"),
		freeSerifIn("/usr/share/fonts/truetype/freefont"),
		freeSerifIn("/usr/share/fonts/gnu-free"),
		FontFiles{
			Regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			Bold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		},
		FontFiles{
			Regular: "/usr/share/fonts/truetype/noto/NotoNaskhArabic-Regular.ttf",
			Bold:    "/usr/share/fonts/truetype/noto/NotoNaskhArabic-Bold.ttf",
		},
	)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, freeSerifIn(home))
	}
	candidates = append(candidates, freeSerifIn(`C:\Windows\Fonts`))
	return &PathResolver{Candidates: candidates, exists: fileExists}
}

func freeSerifIn(dir string) FontFiles {
	return FontFiles{
		Regular: filepath.Join(dir, "FreeSerif.ttf"),
		Bold:    filepath.Join(dir, "FreeSerifBold.ttf"),
	}
}

func (r *PathResolver) Resolve() (FontFiles, error) {
	exists := r.exists
	if exists == nil {
		exists = fileExists
	}
	for _, candidate := range r.Candidates {
		if !exists(candidate.Regular) {
			continue
		}
		if candidate.Bold != "" && !exists(candidate.Bold) {
			candidate.Bold = ""
		}
		return candidate, nil
	}
	return FontFiles{}, ErrFontNotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// fontData is a loaded font family.
type fontData struct {
	regular []byte
	bold    []byte
}

func loadFonts(resolver FontResolver) (fontData, error) {
	files, err := resolver.Resolve()
	if err != nil {
		return fontData{}, err
	}
	regular, err := os.ReadFile(files.Regular)
	if err != nil {
		return fontData{}, fmt.Errorf("read font %s: %w", files.Regular, err)
	}
	if len(regular) == 0 {
		return fontData{}, fmt.Errorf("font %s is empty", files.Regular)
	}
	data := fontData{regular: regular, bold: regular}
	if files.Bold != "" {
		bold, err := os.ReadFile(files.Bold)
		if err != nil {
			return fontData{}, fmt.Errorf("read font %s: %w", files.Bold, err)
		}
		if len(bold) > 0 {
			data.bold = bold
		}
	}
	return data, nil
}
