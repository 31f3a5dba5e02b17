package telegram

import "testing"

func TestCallbackDataEncodeDecode(t *testing.T) {
	testCases := []struct {
		name   string
		data   string
		action string
		params int
	}{
		{"next", buildNextCallback(), actionNext, 0},
		{"reset", buildResetCallback(), actionReset, 0},
		{"settings", buildSettingsCallback(), actionSettings, 0},
		{"mode", buildModeCallback(modeNoMistake), actionMode, 1},
		{"answer", buildAnswerCallback(2, "ねこ"), actionAnswer, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cd := decodeCallback(tc.data)
			if cd.Action != tc.action {
				t.Errorf("Expected action %q, got %q", tc.action, cd.Action)
			}
			if len(cd.Params) != tc.params {
				t.Errorf("Expected %d params, got %v", tc.params, cd.Params)
			}
			if cd.encode() != tc.data {
				t.Errorf("Expected round trip %q, got %q", tc.data, cd.encode())
			}
		})
	}
}

func TestParseAnswerCallback(t *testing.T) {
	index, term, ok := parseAnswerCallback(decodeCallback(buildAnswerCallback(3, "shi/si")))
	if !ok || index != 3 || term != "shi/si" {
		t.Errorf("Expected (3, shi/si, true), got (%d, %q, %v)", index, term, ok)
	}

	// Terms may contain the separator.
	_, term, ok = parseAnswerCallback(decodeCallback(buildAnswerCallback(0, "a:b")))
	if !ok || term != "a:b" {
		t.Errorf("Expected term a:b, got %q (ok=%v)", term, ok)
	}

	invalid := []string{"answer", "answer:x:ねこ", "answer:-1:ねこ", "next:1:ねこ"}
	for _, data := range invalid {
		if _, _, ok := parseAnswerCallback(decodeCallback(data)); ok {
			t.Errorf("Expected %q to be rejected", data)
		}
	}
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	// Telegram rejects callback data over 64 bytes.
	long := "se promener / faire une balade"
	if data := buildAnswerCallback(9, long); len(data) > 64 {
		t.Errorf("Callback data %q is %d bytes", data, len(data))
	}
}
