// Package ocr defines the engine contract glyphscan shares with general OCR
// providers: one encoded image in, recognized lines out. The built-in engine
// wraps the glyph decoder; others (see ocr/tesseract) can be swapped in for
// comparison without changing callers.
package ocr
