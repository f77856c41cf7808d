package service

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedFile = errors.New("unsupported file")
	ErrExtraction      = errors.New("text extraction failed")
	ErrRender          = errors.New("render failed")
	ErrAssistant       = errors.New("assistant failed")
)
