package client

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs local Tesseract OCR over receipt images. Receipts are
// photographed at odd angles and low light, so images are converted to
// grayscale and upscaled before recognition.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromImage runs OCR on a decoded receipt image or a page
// extracted from a PDF, returning the recognized text together with the
// mean word confidence.
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, float64, error) {
	tempFile, err := tc.writePreprocessed(img)
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tempFile)

	return tc.extractTextAndConfidence(tempFile)
}

// writePreprocessed grayscales and, for small captures, upscales the image,
// then writes it to a temporary PNG for Tesseract.
func (tc *TesseractClient) writePreprocessed(img image.Image) (string, error) {
	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() < 800 {
		gray = imaging.Resize(gray, 0, 1200, imaging.Lanczos)
	}

	tempFile, err := os.CreateTemp("", "receipt-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tempFile.Name()
	tempFile.Close()

	if err := imaging.Save(gray, name); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to save preprocessed image: %w", err)
	}
	return name, nil
}

func (tc *TesseractClient) extractTextAndConfidence(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage("eng"); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Confidence is advisory; text alone is still usable.
		return text, 0, nil
	}

	var totalConf float64
	var count int
	for _, box := range boxes {
		totalConf += box.Confidence
		count++
	}

	avgConf := 0.0
	if count > 0 {
		avgConf = totalConf / float64(count)
	}

	return text, avgConf, nil
}
