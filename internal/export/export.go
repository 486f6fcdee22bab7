// Package export writes the site as static files: the rendered document,
// the asset tree and an optional Markdown rendition of the page.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/a-h/templ"
	"github.com/evanw/esbuild/pkg/api"

	"github.com/projeto-tutor/tutor/internal/ui/components"
	"github.com/projeto-tutor/tutor/internal/ui/pages"
	"github.com/projeto-tutor/tutor/internal/ui/resources"
)

const (
	// IndexFile is the rendered document.
	IndexFile = "index.html"
	// MarkdownFile is the Markdown rendition of the page body.
	MarkdownFile = "index.md"
	// AssetDir holds the copied asset tree inside the output directory.
	AssetDir = "static"
)

// Options configures a static export.
type Options struct {
	OutDir   string
	Minify   bool
	Markdown bool
	Page     pages.Options
	// Assets defaults to the embedded asset tree.
	Assets fs.FS
}

// File is one written output file.
type File struct {
	Path string
	Size int64
}

// Result lists the files written by Build, in write order.
type Result struct {
	OutDir string
	Files  []File
}

// TotalSize sums the size of all written files.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// Build renders the site into opts.OutDir.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutDir == "" {
		return nil, errors.New("export: output directory is required")
	}
	if opts.Assets == nil {
		opts.Assets = resources.FS()
	}

	if err := os.MkdirAll(opts.OutDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	page := opts.Page
	page.LiveReload = false
	page.StylesheetHref = path.Join(AssetDir, resources.Stylesheet)

	res := &Result{OutDir: opts.OutDir}

	var doc strings.Builder
	if err := RenderHTML(ctx, &doc, page); err != nil {
		return nil, err
	}
	if err := res.write(IndexFile, []byte(doc.String())); err != nil {
		return nil, err
	}

	if err := res.copyAssets(opts.Assets, opts.Minify); err != nil {
		return nil, err
	}

	if opts.Markdown {
		md, err := RenderMarkdown(ctx, page)
		if err != nil {
			return nil, err
		}
		if err := res.write(MarkdownFile, []byte(md)); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// RenderHTML writes the full document to w.
func RenderHTML(ctx context.Context, w io.Writer, opts pages.Options) error {
	return render(ctx, w, components.Templ(pages.Document(opts)))
}

// RenderMarkdown converts the page body to Markdown.
func RenderMarkdown(ctx context.Context, opts pages.Options) (string, error) {
	var body strings.Builder
	if err := render(ctx, &body, components.Templ(pages.Landing(opts))); err != nil {
		return "", err
	}

	md, err := htmltomarkdown.ConvertString(body.String())
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

func render(ctx context.Context, w io.Writer, c templ.Component) error {
	if err := c.Render(ctx, w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// MinifyCSS minifies a stylesheet with esbuild.
func MinifyCSS(src string) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var errMsg string
		for _, err := range result.Errors {
			line, col := 0, 0
			file := "<stdin>"
			if err.Location != nil {
				line, col = err.Location.Line, err.Location.Column
				if err.Location.File != "" {
					file = err.Location.File
				}
			}
			errMsg += fmt.Sprintf("%s:%d:%d: %s\n", file, line, col, err.Text)
		}
		return "", fmt.Errorf("esbuild errors:\n%s", errMsg)
	}

	return string(result.Code), nil
}

func (r *Result) copyAssets(assets fs.FS, minify bool) error {
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", p, err)
		}

		if minify && path.Ext(p) == ".css" {
			minified, err := MinifyCSS(string(content))
			if err != nil {
				return fmt.Errorf("failed to minify %s: %w", p, err)
			}
			content = []byte(minified)
		}

		return r.write(path.Join(AssetDir, p), content)
	})
}

// write stores content at rel (slash separated) under the output directory.
func (r *Result) write(rel string, content []byte) error {
	dst := filepath.Join(r.OutDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	r.Files = append(r.Files, File{Path: rel, Size: int64(len(content))})
	return nil
}
