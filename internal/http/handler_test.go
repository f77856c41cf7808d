package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensaf/contracts-service/internal/assistant"
	"github.com/ensaf/contracts-service/internal/excel"
	"github.com/ensaf/contracts-service/internal/extract"
	"github.com/ensaf/contracts-service/internal/llm"
	"github.com/ensaf/contracts-service/internal/model"
	"github.com/ensaf/contracts-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCompleter struct {
	answer string
	err    error
	calls  []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.calls = append(f.calls, req)
	return f.answer, f.err
}

type fakePDF struct {
	err error
	got []model.ContractDocument
}

func (f *fakePDF) Generate(doc model.ContractDocument) ([]byte, error) {
	f.got = append(f.got, doc)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type testServer struct {
	router    *gin.Engine
	completer *fakeCompleter
	pdf       *fakePDF
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	completer := &fakeCompleter{answer: "شرح البند: هذا البند يعني أن..."}
	pdf := &fakePDF{}
	contracts := service.NewContractService(pdf, excel.NewGenerator())
	assist := service.NewAssistService(assistant.New(completer, nil, zerolog.Nop()), extract.NewExtractor())
	handler := NewHandler(contracts, assist, 1<<20, zerolog.Nop())
	return &testServer{
		router:    NewRouter(handler, zerolog.Nop(), "test", []string{"*"}),
		completer: completer,
		pdf:       pdf,
	}
}

func (s *testServer) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

const contractTextAR = "عقد عمل موحد بين الطرف الأول شركة الأفق والطرف الثاني محمد عبدالله يتضمن الأجر وساعات العمل والإجازات"

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestContractFields(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contract-fields", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["fields"], 10)
}

func TestGenerateContract(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/generate-contract", `{"form_data":{"employee_name":"محمد","basic_salary":10000,"housing_allowance":"2500","transport_allowance":1000,"other_allowances":500,"iban":null}}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["generated_at"])

	doc := body["contract"].(map[string]any)
	assert.Len(t, doc["sections"], 16)
	calcs := doc["calculations"].(map[string]any)
	assert.Equal(t, 14000.0, calcs["total"])
	assert.Equal(t, 12635.0, calcs["net"])
}

func TestGenerateContractEmptyBodies(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{"", `{}`, `{"form_data":{}}`} {
		w := s.postJSON(t, "/api/generate-contract", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		assert.Len(t, decode(t, w)["contract"].(map[string]any)["sections"], 16)
	}
}

func TestGenerateContractMalformed(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{"form_data":`, `{"form_data":{"employee_name":{"first":"x"}}}`} {
		w := s.postJSON(t, "/api/generate-contract", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, false, decode(t, w)["success"])
	}
}

func TestExplainClause(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/explain-clause", `{"clause_text":"يلتزم الطرف الثاني بعدم إفشاء أسرار العمل خلال فترة العقد وبعد انتهائه","language":"arabic"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "شرح البند: هذا البند يعني أن...", body["explanation"])
	require.Len(t, s.completer.calls, 1)
	assert.Equal(t, 1000, s.completer.calls[0].MaxTokens)
}

func TestExplainClauseTooShort(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{"clause_text":"","language":"arabic"}`, `{"clause_text":"قصير"}`} {
		w := s.postJSON(t, "/api/explain-clause", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decode(t, w)["success"])
	}
	assert.Empty(t, s.completer.calls)
}

func TestExplainClauseAssistantFailure(t *testing.T) {
	s := newTestServer(t)
	s.completer.err = errors.New("OpenAI API error")

	w := s.postJSON(t, "/api/explain-clause", `{"clause_text":"clause text long enough"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "OpenAI API error")
}

func TestExportPDF(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/export-pdf", `{"form_data":{}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="Ensaf_Contract_\d{8}_\d{6}\.pdf"$`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestExportPDFWithContractData(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/export-pdf", `{"form_data":{},"contract_data":{"title_en":"Edited","sections":[{"num":1,"title_ar":"أ","title_en":"A","kind":"clause","text_ar":"نص","text_en":"text"}]}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, s.pdf.got, 1)
	assert.Equal(t, "Edited", s.pdf.got[0].TitleEN)
	assert.Len(t, s.pdf.got[0].Sections, 1)
}

func TestExportPDFContractDataWithoutKind(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/export-pdf", `{"contract_data":{"title_en":"Edited","sections":[`+
		`{"num":1,"title_en":"A","rows":[{"ar":"أ","en":"a","val":"v"}]},`+
		`{"num":2,"title_en":"B","clause":true,"text_ar":"نص","text_en":"text"},`+
		`{"num":16,"title_en":"C","multi_clauses":[]}]}}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, s.pdf.got, 1)
	sections := s.pdf.got[0].Sections
	require.Len(t, sections, 3)
	assert.Equal(t, model.SectionKindRows, sections[0].Kind)
	assert.Equal(t, model.SectionKindClause, sections[1].Kind)
	assert.Equal(t, "text", sections[1].TextEN)
	assert.Equal(t, model.SectionKindClauses, sections[2].Kind)
}

func TestGenerateContractEmitsEmptyClauseList(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/generate-contract", `{"form_data":{}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Contract struct {
			Sections []map[string]json.RawMessage `json:"sections"`
		} `json:"contract"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Contract.Sections, 16)
	last := body.Contract.Sections[15]
	assert.JSONEq(t, `[]`, string(last["multi_clauses"]))
}

func TestExportPDFRenderFailure(t *testing.T) {
	s := newTestServer(t)
	s.pdf.err = errors.New("font broken")

	w := s.postJSON(t, "/api/export-pdf", `{"form_data":{}}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "font broken")
}

func TestExportXLSX(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON(t, "/api/export-xlsx", `{"form_data":{"employee_name":"محمد"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestReviewContractJSON(t *testing.T) {
	s := newTestServer(t)
	s.completer.answer = "تقرير المراجعة: العقد يحتوي على البنود الأساسية..."

	payload, _ := json.Marshal(map[string]string{"contract_text": contractTextAR, "language": "arabic"})
	w := s.postJSON(t, "/api/review-contract", string(payload))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, s.completer.answer, body["review"])
	assert.Equal(t, float64(len([]rune(contractTextAR))), body["text_length"])
	assert.NotEmpty(t, body["reviewed_at"])
	require.Len(t, s.completer.calls, 1)
	assert.Equal(t, 3000, s.completer.calls[0].MaxTokens)
}

func TestReviewContractRejectsShortText(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{`{"contract_text":""}`, `{"contract_text":"نص قصير جداً"}`} {
		w := s.postJSON(t, "/api/review-contract", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decode(t, w)["success"])
	}
	assert.Empty(t, s.completer.calls)
}

func TestReviewContractAssistantFailure(t *testing.T) {
	s := newTestServer(t)
	s.completer.err = errors.New("OpenAI API error")

	payload, _ := json.Marshal(map[string]string{"contract_text": contractTextAR})
	w := s.postJSON(t, "/api/review-contract", string(payload))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func multipartRequest(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("contract_file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/review-contract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestReviewContractTxtUpload(t *testing.T) {
	s := newTestServer(t)
	req := multipartRequest(t, map[string]string{"language": "english"}, "contract.txt", []byte(contractTextAR))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, s.completer.calls, 1)
	assert.Contains(t, s.completer.calls[0].Prompt, contractTextAR)
	assert.Contains(t, s.completer.calls[0].System, "Respond ONLY in English")
}

func TestReviewContractUnsupportedUpload(t *testing.T) {
	s := newTestServer(t)
	req := multipartRequest(t, map[string]string{"language": "arabic"}, "contract.docx", []byte("test content"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
	assert.Empty(t, s.completer.calls)
}

func TestReviewContractFormTextOnly(t *testing.T) {
	s := newTestServer(t)
	req := multipartRequest(t, map[string]string{"contract_text": contractTextAR}, "", nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/generate-contract", nil)
	req.Header.Set("Origin", "https://ensaf.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
