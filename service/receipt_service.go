package service

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
	"github.com/receiptstack/receipt-extraction/utils"
)

// OCREngine is the recognition boundary. The service never looks at pixels
// itself; it only consumes the engine's text output.
type OCREngine interface {
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

// ReceiptService turns uploaded receipt captures into structured fields.
type ReceiptService struct {
	parser       *utils.ReceiptParser
	ocr          OCREngine
	pdfProcessor PDFProcessor
	log          zerolog.Logger
}

func NewReceiptService(parser *utils.ReceiptParser, ocr OCREngine, pdfProcessor PDFProcessor, log zerolog.Logger) *ReceiptService {
	return &ReceiptService{
		parser:       parser,
		ocr:          ocr,
		pdfProcessor: pdfProcessor,
		log:          log,
	}
}

// ParseText extracts structured fields from already-recognized text.
func (s *ReceiptService) ParseText(text string) dto.ParseReceiptResponse {
	return dto.ParseReceiptResponse{
		Fields:      s.parser.Parse(text),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// ScanUpload recognizes an uploaded receipt image or PDF and extracts its
// fields. PDFs are tried as text first; scanned PDFs fall back to per-page
// OCR. A QR code on the receipt, when present, is decoded alongside.
func (s *ReceiptService) ScanUpload(fileHeader *multipart.FileHeader) (*dto.ReceiptScanResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var (
		text      string
		conf      float64
		qrPayload string
	)

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		text, conf, qrPayload, err = s.scanPDF(data)
	} else {
		text, conf, qrPayload, err = s.scanImage(data)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text could be recognized in %s", fileHeader.Filename)
	}

	fields := s.parser.Parse(text)
	s.log.Info().
		Str("filename", fileHeader.Filename).
		Float64("ocr_confidence", conf).
		Str("merchant", fields.Merchant).
		Msg("receipt scanned")

	return &dto.ReceiptScanResult{
		RecognizedText: text,
		Fields:         fields,
		OcrConfidence:  conf,
		QRPayload:      qrPayload,
		ProcessedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

func (s *ReceiptService) scanImage(data []byte) (string, float64, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", 0, "", fmt.Errorf("failed to decode image: %w", err)
	}

	text, conf, err := s.ocr.ExtractTextFromImage(img)
	if err != nil {
		return "", 0, "", fmt.Errorf("image OCR failed: %w", err)
	}

	qrPayload := ""
	if payload, err := decodeQRPayload(img); err == nil {
		qrPayload = payload
	}

	return text, conf, qrPayload, nil
}

func (s *ReceiptService) scanPDF(data []byte) (string, float64, string, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("pdf text extraction failed")
	}

	// Text-based PDF: the embedded text is authoritative.
	if len(strings.TrimSpace(text)) >= 20 {
		return text, 100.0, "", nil
	}

	// Scanned PDF: OCR each page image and aggregate.
	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil {
		return "", 0, "", fmt.Errorf("failed to extract images from scanned pdf: %w", err)
	}
	if len(images) == 0 {
		return "", 0, "", fmt.Errorf("scanned pdf contains no extractable images")
	}

	var combined strings.Builder
	var totalConf float64
	var pageCount int
	qrPayload := ""

	for _, img := range images {
		pageText, pageConf, err := s.ocr.ExtractTextFromImage(img)
		if err != nil {
			s.log.Warn().Err(err).Msg("ocr failed for a pdf page")
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
		totalConf += pageConf
		pageCount++

		if qrPayload == "" {
			if payload, err := decodeQRPayload(img); err == nil {
				qrPayload = payload
			}
		}
	}

	if pageCount == 0 {
		return "", 0, "", fmt.Errorf("scanned pdf OCR produced no text")
	}

	return combined.String(), totalConf / float64(pageCount), qrPayload, nil
}
