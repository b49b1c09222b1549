package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量一行文本的像素宽度
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
//   - 文本中的 '\n' 作为硬换行保留
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return []string{textStr}
	}
	return WrapWords(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// WrapWords 与 WrapText 相同，但宽度由 measure 决定（便于测试）
func WrapWords(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身就超宽：按字符拆分
		if measure(word) > maxWidth {
			pieces := breakWord(word, maxWidth, measure)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
			continue
		}

		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakWord 按字符拆分超宽单词，每段至少一个字符
func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	var pieces []string
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		test := current + string(r)
		if current != "" && measure(test) > maxWidth {
			pieces = append(pieces, current)
			current = string(r)
			continue
		}
		current = test
	}

	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// DrawCenteredText 以 (cx, y) 为顶部中心绘制单行文本
func DrawCenteredText(screen *ebiten.Image, s string, font *text.GoTextFace, cx, y float64, clr color.Color) {
	if font == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, font, op)
}

// DrawWrappedText 在 maxWidth 宽度内居中绘制多行文本，返回绘制结束时的 y
func DrawWrappedText(screen *ebiten.Image, s string, font *text.GoTextFace, cx, y, maxWidth, lineHeight float64, clr color.Color) float64 {
	for _, line := range WrapText(s, font, maxWidth) {
		DrawCenteredText(screen, line, font, cx, y, clr)
		y += lineHeight
	}
	return y
}

// DrawTextInBox 在矩形内水平、垂直居中绘制单行文本
func DrawTextInBox(screen *ebiten.Image, s string, font *text.GoTextFace, box Rect, clr color.Color) {
	if font == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(box.CenterX(), box.CenterY())
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, font, op)
}
