package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer   = "answer"
	actionNext     = "next"
	actionReset    = "reset"
	actionMode     = "mode"
	actionSettings = "settings"
)

// Mode sub-actions.
const (
	modeFreeText  = "free_text"
	modeWords     = "words"
	modeReversed  = "reversed"
	modeNoMistake = "no_mistake"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildAnswerCallback builds callback data for picking option index of the question about term.
// The term lets a stale keyboard be told apart from the current question.
func buildAnswerCallback(index int, term string) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(index), term},
	}.encode()
}

// parseAnswerCallback extracts the option index and term from answer callback params.
func parseAnswerCallback(cd callbackData) (index int, term string, ok bool) {
	if cd.Action != actionAnswer || len(cd.Params) < 2 {
		return 0, "", false
	}
	index, err := strconv.Atoi(cd.Params[0])
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, strings.Join(cd.Params[1:], ":"), true
}

func buildNextCallback() string {
	return actionNext
}

func buildResetCallback() string {
	return actionReset
}

func buildSettingsCallback() string {
	return actionSettings
}

// buildModeCallback builds callback data for flipping one of the quiz modes.
func buildModeCallback(mode string) string {
	return callbackData{
		Action: actionMode,
		Params: []string{mode},
	}.encode()
}
