package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finadvisor/finadvisor/constants"
	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/llm"
	"github.com/finadvisor/finadvisor/internal/ocr"
	"github.com/finadvisor/finadvisor/internal/upload"
)

type fakeExtractor struct {
	text   string
	err    error
	called int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (ocr.Result, error) {
	f.called++
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{Text: f.text, Pages: 1, SourceType: constants.IMAGE, Method: "image-ocr"}, nil
}

type fakeAnalyzer struct {
	analysis llm.Analysis
	err      error
	called   int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string) (llm.Analysis, []byte, error) {
	f.called++
	if f.err != nil {
		return llm.Analysis{}, nil, f.err
	}
	raw, _ := json.Marshal(f.analysis)
	return f.analysis, raw, nil
}

type mapCache struct {
	entries map[string][]byte
	sets    int
}

func newMapCache() *mapCache { return &mapCache{entries: map[string][]byte{}} }

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	m.sets++
	m.entries[key] = value
}

func newTestStore(t *testing.T) (*upload.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := upload.NewStore(dir, nil)
	require.NoError(t, err)
	return store, dir
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

var sampleAnalysis = llm.Analysis{
	DocumentType: "bank statement",
	Explanation:  "A monthly account statement.",
	KeyDetails:   []string{"Closing balance 12,450"},
	Calculations: []string{"12,405.90 + 45.10 = 12,451.00"},
	Insights:     "Recurring subscription charges present.",
}

func TestRunCompletes(t *testing.T) {
	store, dir := newTestStore(t)
	ext := &fakeExtractor{text: "statement text"}
	an := &fakeAnalyzer{analysis: sampleAnalysis}
	c := newMapCache()
	p := New(store, ext, an, c, time.Hour, nil)

	got, err := p.Run(context.Background(), Upload{Filename: "statement.png", Content: strings.NewReader("bytes")})
	require.NoError(t, err)
	assert.Equal(t, sampleAnalysis, got)
	assert.Equal(t, 1, ext.called)
	assert.Equal(t, 1, an.called)
	assert.Equal(t, 1, c.sets)

	// Scratch file is removed after the run.
	assert.Zero(t, dirEntries(t, dir))
}

func TestRunNoFile(t *testing.T) {
	store, _ := newTestStore(t)
	ext := &fakeExtractor{}
	p := New(store, ext, &fakeAnalyzer{}, nil, 0, nil)

	_, err := p.Run(context.Background(), Upload{Filename: "", Content: strings.NewReader("x")})
	require.Error(t, err)
	assert.Equal(t, common.KindNoFile, common.KindOf(err))

	_, err = p.Run(context.Background(), Upload{Filename: "a.png", Content: nil})
	require.Error(t, err)
	assert.Equal(t, common.KindNoFile, common.KindOf(err))
	assert.Zero(t, ext.called)
}

func TestRunUnsupportedFormatBeforeExtraction(t *testing.T) {
	store, dir := newTestStore(t)
	ext := &fakeExtractor{text: "should never run"}
	an := &fakeAnalyzer{}
	p := New(store, ext, an, nil, 0, nil)

	_, err := p.Run(context.Background(), Upload{Filename: "notes.txt", Content: strings.NewReader("plain text")})
	require.Error(t, err)
	assert.Equal(t, common.KindUnsupportedFormat, common.KindOf(err))
	assert.Zero(t, ext.called, "extraction must never start for unsupported formats")
	assert.Zero(t, an.called)
	assert.Zero(t, dirEntries(t, dir))
}

func TestRunEmptyContentSkipsAnalyzer(t *testing.T) {
	store, dir := newTestStore(t)
	// Structurally fine extraction, but nothing recognizable on the page.
	ext := &fakeExtractor{text: "   \n\t  "}
	an := &fakeAnalyzer{}
	p := New(store, ext, an, nil, 0, nil)

	_, err := p.Run(context.Background(), Upload{Filename: "blank.jpg", Content: strings.NewReader("img")})
	require.Error(t, err)
	assert.Equal(t, common.KindEmptyContent, common.KindOf(err))
	assert.Equal(t, 1, ext.called)
	assert.Zero(t, an.called, "analyzer must not be invoked for empty text")
	assert.Zero(t, dirEntries(t, dir))
}

func TestRunExtractionFailure(t *testing.T) {
	store, dir := newTestStore(t)
	ext := &fakeExtractor{err: common.Errorf(common.KindExtraction, "ocr failed")}
	an := &fakeAnalyzer{}
	p := New(store, ext, an, nil, 0, nil)

	_, err := p.Run(context.Background(), Upload{Filename: "scan.png", Content: strings.NewReader("img")})
	require.Error(t, err)
	assert.Equal(t, common.KindExtraction, common.KindOf(err))
	assert.Zero(t, an.called)
	assert.Zero(t, dirEntries(t, dir), "scratch file removed even on failure")
}

func TestRunAnalysisFailure(t *testing.T) {
	store, dir := newTestStore(t)
	ext := &fakeExtractor{text: "text"}
	an := &fakeAnalyzer{err: common.Errorf(common.KindAnalysis, "model invocation failed")}
	p := New(store, ext, an, nil, 0, nil)

	_, err := p.Run(context.Background(), Upload{Filename: "scan.png", Content: strings.NewReader("img")})
	require.Error(t, err)
	assert.Equal(t, common.KindAnalysis, common.KindOf(err))
	assert.Zero(t, dirEntries(t, dir))
}

func TestRunCacheHitSkipsModel(t *testing.T) {
	store, _ := newTestStore(t)
	ext := &fakeExtractor{text: "statement text"}
	an := &fakeAnalyzer{analysis: sampleAnalysis}
	c := newMapCache()

	content := "identical bytes"
	sum := sha256.Sum256([]byte(content))
	raw, _ := json.Marshal(sampleAnalysis)
	c.entries[hex.EncodeToString(sum[:])] = raw

	p := New(store, ext, an, c, time.Hour, nil)
	got, err := p.Run(context.Background(), Upload{Filename: "statement.png", Content: strings.NewReader(content)})
	require.NoError(t, err)
	assert.Equal(t, sampleAnalysis, got)
	assert.Zero(t, an.called, "cached analysis must skip the model call")
}

func TestRunIdempotentAcrossRuns(t *testing.T) {
	store, _ := newTestStore(t)
	ext := &fakeExtractor{text: "same text"}
	an := &fakeAnalyzer{analysis: sampleAnalysis}
	p := New(store, ext, an, nil, 0, nil)

	first, err := p.Run(context.Background(), Upload{Filename: "doc.png", Content: strings.NewReader("b")})
	require.NoError(t, err)
	second, err := p.Run(context.Background(), Upload{Filename: "doc.png", Content: strings.NewReader("b")})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
