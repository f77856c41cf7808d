package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ensaf/contracts-service/internal/contract"
	"github.com/ensaf/contracts-service/internal/model"
	"github.com/ensaf/contracts-service/internal/schema"
)

type PDFGenerator interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

type ExcelGenerator interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

var errPDFUnavailable = errors.New("pdf rendering is unavailable: no arabic-capable font was found")

type ContractService struct {
	pdf   PDFGenerator
	excel ExcelGenerator
	now   func() time.Time
}

type ExportInput struct {
	Submission model.Submission
	// Document, when set, is rendered as-is instead of being rebuilt.
	Document *model.ContractDocument
}

type FileResult struct {
	FileName string
	Content  []byte
}

// NewContractService accepts a nil pdf generator; PDF exports then fail with
// ErrRender while the rest of the service keeps working.
func NewContractService(pdf PDFGenerator, excel ExcelGenerator) *ContractService {
	return &ContractService{pdf: pdf, excel: excel, now: time.Now}
}

func (s *ContractService) Fields() []model.FieldSection {
	return schema.Sections()
}

func (s *ContractService) Build(sub model.Submission) model.ContractDocument {
	return contract.Build(sub, s.now())
}

func (s *ContractService) ExportPDF(_ context.Context, input ExportInput) (*FileResult, error) {
	if s.pdf == nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, errPDFUnavailable)
	}

	doc := s.document(input)
	content, err := s.pdf.Generate(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return &FileResult{FileName: s.fileName("pdf"), Content: content}, nil
}

func (s *ContractService) ExportExcel(_ context.Context, input ExportInput) (*FileResult, error) {
	if s.excel == nil {
		return nil, fmt.Errorf("%w: excel export is not configured", ErrRender)
	}

	content, err := s.excel.Generate(s.document(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return &FileResult{FileName: s.fileName("xlsx"), Content: content}, nil
}

func (s *ContractService) document(input ExportInput) model.ContractDocument {
	if input.Document != nil && len(input.Document.Sections) > 0 {
		return *input.Document
	}
	return s.Build(input.Submission)
}

func (s *ContractService) fileName(ext string) string {
	return fmt.Sprintf("Ensaf_Contract_%s.%s", s.now().Format("20060102_150405"), ext)
}
