package classify

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
)

// Outcome — результат классификации одной попытки генерации.
type Outcome struct {
	Status model.Status
	Kind   model.FailureKind // заполнен только при StatusFailed
}

// Predicate inspects the extracted story text and reports a failure kind.
// Predicates are tried in order; the first match wins.
type Predicate func(text string) (model.FailureKind, bool)

// Фразы, которыми бэкенд сообщает о блокировке контент-фильтром. Сопоставление
// по точным подстрокам (с учётом регистра); новая формулировка блокировки,
// не попавшая в список, молча пройдёт как успех — известная хрупкость.
var guardrailPhrases = []string{
	"inappropriate content",
	"blocked by content filters",
	"try again with different words",
}

// GuardrailPredicate matches the known content-filter block phrases.
func GuardrailPredicate(text string) (model.FailureKind, bool) {
	for _, phrase := range guardrailPhrases {
		if strings.Contains(text, phrase) {
			return model.FailureGuardrailBlock, true
		}
	}
	return "", false
}

// DefaultPredicates — расширяемая цепочка проверок текста ответа.
var DefaultPredicates = []Predicate{GuardrailPredicate}

// Classify maps the extracted response text and/or the call error to an
// outcome. It is pure: same input, same output, no side effects.
func Classify(text string, err error) Outcome {
	if err != nil {
		if isTimeout(err) {
			return Outcome{Status: model.StatusFailed, Kind: model.FailureTimeout}
		}
		return Outcome{Status: model.StatusFailed, Kind: model.FailureTechnical}
	}
	if text == "" {
		return Outcome{Status: model.StatusFailed, Kind: model.FailureTechnical}
	}
	for _, p := range DefaultPredicates {
		if kind, ok := p(text); ok {
			return Outcome{Status: model.StatusFailed, Kind: kind}
		}
	}
	return Outcome{Status: model.StatusSuccess}
}

// isTimeout распознаёт истёкший дедлайн запроса или сетевой таймаут.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Пользовательские объяснения для каждой причины; записываются в content
// неуспешной записи вместо текста истории.
const (
	guardrailMessage = "Story generation was blocked by content filters. Please try different characters or keywords."
	timeoutMessage   = "Story generation timed out. Please try again."
	technicalMessage = "Story generation failed due to a technical error."
)

// FailureMessage returns the fixed human-readable explanation for kind.
func FailureMessage(kind model.FailureKind) string {
	switch kind {
	case model.FailureGuardrailBlock:
		return guardrailMessage
	case model.FailureTimeout:
		return timeoutMessage
	default:
		return technicalMessage
	}
}
