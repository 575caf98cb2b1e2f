package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// Renderer определяет рендеринг страниц PDF-документа в PNG-изображения
type Renderer interface {
	// RenderPages рендерит все страницы документа и возвращает
	// содержимое PNG-файлов в порядке следования страниц
	RenderPages(ctx context.Context, pdfData []byte) ([][]byte, error)
}

// PopplerRenderer реализует Renderer через утилиту pdftoppm из пакета poppler-utils
type PopplerRenderer struct {
	// Binary — путь к pdftoppm, по умолчанию берется из PATH
	Binary string
	// DPI — разрешение рендеринга, по умолчанию 150
	DPI int
}

// NewPopplerRenderer создает рендерер с настройками по умолчанию
func NewPopplerRenderer() *PopplerRenderer {
	return &PopplerRenderer{Binary: "pdftoppm", DPI: 150}
}

// RenderPages рендерит PDF во временном каталоге и собирает PNG-файлы по порядку
func (r *PopplerRenderer) RenderPages(ctx context.Context, pdfData []byte) ([][]byte, error) {
	dir, err := os.MkdirTemp("", "pdf-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write temp pdf: %w", err)
	}

	outPrefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, r.Binary,
		"-png",
		"-r", fmt.Sprint(r.DPI),
		pdfPath,
		outPrefix,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, output)
	}

	// pdftoppm нумерует файлы как page-1.png, page-2.png, ...
	matches, err := filepath.Glob(outPrefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to list rendered pages: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages")
	}
	sort.Slice(matches, func(i, j int) bool {
		return pageNumber(matches[i]) < pageNumber(matches[j])
	})

	pages := make([][]byte, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read rendered page %s: %w", path, err)
		}
		pages = append(pages, data)
	}
	return pages, nil
}

// pageNumber извлекает номер страницы из имени файла вида page-12.png.
// Лексикографическая сортировка здесь не годится: page-10 шел бы раньше page-2.
func pageNumber(path string) int {
	base := filepath.Base(path)
	var n int
	fmt.Sscanf(base, "page-%d.png", &n)
	return n
}
