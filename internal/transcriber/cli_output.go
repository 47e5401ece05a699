package transcriber

import (
	"encoding/json"
	"time"
)

// cliOutput mirrors the JSON written by whisper-cli -ojf.
type cliOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []cliSegment `json:"transcription"`
}

type cliOffsets struct {
	From int64 `json:"from"` // milliseconds
	To   int64 `json:"to"`
}

type cliSegment struct {
	Offsets cliOffsets `json:"offsets"`
	Text    string     `json:"text"`
	Tokens  []cliToken `json:"tokens"`
}

type cliToken struct {
	Text    string     `json:"text"`
	Offsets cliOffsets `json:"offsets"`
	P       float32    `json:"p"`
}

func parseCLIOutput(data []byte) (*Result, error) {
	var out cliOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	res := &Result{
		Language: out.Result.Language,
		Segments: make([]Segment, 0, len(out.Transcription)),
	}
	if res.Language == "" {
		res.Language = Language
	}

	for _, s := range out.Transcription {
		seg := Segment{
			Start: millis(s.Offsets.From),
			End:   millis(s.Offsets.To),
			Text:  s.Text,
		}
		for _, tok := range s.Tokens {
			if isSpecialToken(tok.Text) {
				continue
			}
			seg.Words = append(seg.Words, Word{
				Start:       millis(tok.Offsets.From),
				End:         millis(tok.Offsets.To),
				Text:        tok.Text,
				Probability: tok.P,
			})
		}
		res.Segments = append(res.Segments, seg)
	}

	res.Text = joinText(res.Segments)
	return res, nil
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
