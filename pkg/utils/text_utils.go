package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 在空格处断行，保留单词完整
//   - 单个单词超过最大宽度时按字符强制断行
//   - maxWidth <= 0 或 font 为 nil 时不换行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}
		// 单词本身超宽：按字符切开，最后一段留在当前行
		pieces := breakWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 按字符切分超宽单词，返回至少一段
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		char := string(r)
		if current != "" && measureTextWidth(current+char, font) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
