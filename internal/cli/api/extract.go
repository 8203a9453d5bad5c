package api

import "encoding/json"

// extractFunc — одна типизированная стратегия извлечения текста истории.
type extractFunc func(resp *GenerateResponse) (string, bool)

// Стратегии пробуются по порядку; первая успешная побеждает.
// Порядок фиксирован: прямое поле story, затем body как обычный
// текст, затем body как вложенный JSON-конверт с полем story.
var extractors = []extractFunc{
	fromStoryField,
	fromBodyField,
	fromBodyEnvelope,
}

func fromStoryField(resp *GenerateResponse) (string, bool) {
	if resp.Story != "" {
		return resp.Story, true
	}
	return "", false
}

func fromBodyEnvelope(resp *GenerateResponse) (string, bool) {
	if resp.Body == "" {
		return "", false
	}
	var envelope struct {
		Story string `json:"story"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &envelope); err != nil {
		return "", false
	}
	if envelope.Story == "" {
		return "", false
	}
	return envelope.Story, true
}

func fromBodyField(resp *GenerateResponse) (string, bool) {
	if resp.Body != "" {
		return resp.Body, true
	}
	return "", false
}

// ExtractStoryText returns the story text from a raw generation response, or
// an empty string when no strategy produced content.
func ExtractStoryText(resp *GenerateResponse) string {
	if resp == nil {
		return ""
	}
	for _, extract := range extractors {
		if text, ok := extract(resp); ok {
			return text
		}
	}
	return ""
}
