package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var ErrDocumentParse = errors.New("document could not be parsed")

// DocumentService extracts plain text from PDF uploads.
type DocumentService struct {
	questions *lru.Cache[string, []string]
	log       *zap.Logger
}

// NewDocumentService keeps up to cacheSize questionnaires memoized by content hash.
func NewDocumentService(cacheSize int, log *zap.Logger) (*DocumentService, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create extraction cache: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentService{questions: cache, log: log}, nil
}

// ExtractQuestions returns, in page order, every trimmed line that contains a
// question mark. Pages without text are skipped.
func (s *DocumentService) ExtractQuestions(data []byte) ([]string, error) {
	key := documentKey(data)
	if cached, ok := s.questions.Get(key); ok {
		s.log.Debug("document.questions.cache_hit", zap.String("doc", key[:12]))
		return append([]string(nil), cached...), nil
	}

	pages, err := pageTexts(data)
	if err != nil {
		return nil, err
	}

	questions := []string{}
	for _, text := range pages {
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			if strings.Contains(line, "?") {
				questions = append(questions, strings.TrimSpace(line))
			}
		}
	}

	s.questions.Add(key, questions)
	s.log.Debug("document.questions.extracted",
		zap.String("doc", key[:12]),
		zap.Int("pages", len(pages)),
		zap.Int("questions", len(questions)),
	)
	return append([]string(nil), questions...), nil
}

// ExtractText returns the text of every page joined with newlines, in page order.
func (s *DocumentService) ExtractText(data []byte) (string, error) {
	pages, err := pageTexts(data)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

func pageTexts(data []byte) (pages []string, err error) {
	// the pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrDocumentParse, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	n := r.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() || p.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.Join(pageLines(p.Content().Text), "\n"))
	}
	return pages, nil
}

type textRow struct {
	y    float64
	text strings.Builder
	last *pdf.Text
}

// pageLines groups glyphs into rows by baseline, top to bottom. Within a row
// glyphs keep content-stream order and a space is inserted where the gap to
// the previous glyph is wider than a fraction of the font size.
func pageLines(glyphs []pdf.Text) []string {
	var rows []*textRow
	for i := range glyphs {
		g := &glyphs[i]
		if g.S == "\n" || g.S == "\r" {
			continue
		}

		var row *textRow
		for _, r := range rows {
			if math.Abs(r.y-g.Y) <= rowTolerance(g.FontSize) {
				row = r
				break
			}
		}
		if row == nil {
			row = &textRow{y: g.Y}
			rows = append(rows, row)
		}

		if prev := row.last; prev != nil && prev.S != " " && g.S != " " {
			if g.X-(prev.X+prev.W) > wordGap(prev.FontSize) {
				row.text.WriteByte(' ')
			}
		}
		row.text.WriteString(g.S)
		row.last = g
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.text.String()
	}
	return lines
}

func rowTolerance(fontSize float64) float64 {
	return math.Max(1, 0.4*math.Abs(fontSize))
}

func wordGap(fontSize float64) float64 {
	return math.Max(1, 0.2*math.Abs(fontSize))
}

func documentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
