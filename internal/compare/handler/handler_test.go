package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/config"
)

const resCSV = `Customer Key,Customer Name,Account ID,Total Balance,Street
"1,230",ACME LLC,R100,"1,500.00",10 Elm St
400,John Smith,R200,250.00,100 Main St
`

const vppCSV = `Customer Key,Customer Name,Account ID,Total Balance,Street
1230,ACME LLC,V100,75.00,10 Elm St
900,"Smith, John",V200,80.00,100 Main Street
77,Dup Co,V300,5.00,
77,Dup Co,V301,6.00,
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		MaxUploadMB:        8,
		OutputDir:          t.TempDir(),
		MatchThreshold:     85,
		HighlightThreshold: 80,
		KeyMarker:          `\c`,
	}
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, content := range files {
		fw, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCompareEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	h := Compare(cfg, zerolog.Nop())

	body, ctype := multipartBody(t, map[string]string{"fileRES": resCSV, "fileVPP": vppCSV})
	req := httptest.NewRequest(http.MethodPost, "/compare", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// "1,230" and "1230" reconcile into one combined customer
	require.Len(t, got.Summary, 1)
	assert.Equal(t, `\c1230`, got.Summary[0].CustomerKey)
	assert.Equal(t, "R100, V100", got.Summary[0].AccountIDs)
	assert.Equal(t, 1575.0, got.Summary[0].TotalBalance)

	// John Smith / Smith, John pair up across the exclusive sides
	require.Len(t, got.Matches, 1)
	assert.Equal(t, `\c400`, got.Matches[0].ResKey)
	assert.Equal(t, `\c900`, got.Matches[0].VppKey)
	assert.GreaterOrEqual(t, got.Matches[0].NameScore, 85.0)

	// Dup Co holds two VPP accounts
	require.Len(t, got.Duplicates, 2)
	assert.Equal(t, `\c77`, got.Duplicates[0].CustomerKey)

	// workbook landed in the configured output directory
	require.NotEmpty(t, got.File)
	_, err := os.Stat(got.File)
	assert.NoError(t, err)
}

func TestCompareMissingFile(t *testing.T) {
	cfg := testConfig(t)
	h := Compare(cfg, zerolog.Nop())

	body, ctype := multipartBody(t, map[string]string{"fileRES": resCSV})
	req := httptest.NewRequest(http.MethodPost, "/compare", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fileVPP")
}

func TestCompareMethodNotAllowed(t *testing.T) {
	cfg := testConfig(t)
	h := Compare(cfg, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/compare", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCompareThresholdOverride(t *testing.T) {
	cfg := testConfig(t)
	h := Compare(cfg, zerolog.Nop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("match_threshold", "101")) // nothing can qualify
	fw, err := mw.CreateFormFile("fileRES", "res.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte(resCSV))
	fw, err = mw.CreateFormFile("fileVPP", "vpp.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte(vppCSV))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/compare", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got.Matches)
	assert.Equal(t, 101.0, got.Opts.MatchThreshold)
}
