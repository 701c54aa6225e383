package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestBuildMessages_EscapesFields(t *testing.T) {
	sub := Submission{
		Name:          "Jane & Co",
		Email:         "jane@example.org",
		BusinessEmail: "jane@acme.io",
		Company:       "<b>Acme</b>",
		Subject:       "Hi",
		Message:       "line one\nline two",
	}
	msgs := buildMessages(testMail(), sub)
	require.Len(t, msgs, 2)

	note := msgs[0]
	assert.Contains(t, note.HTML, "Jane &amp; Co")
	assert.Contains(t, note.HTML, "&lt;b&gt;Acme&lt;/b&gt;")
	assert.Contains(t, note.HTML, "line one<br>\nline two")

	assert.NotContains(t, note.Text, "<p>")
	assert.NotContains(t, note.Text, "<br>")
	assert.Contains(t, note.Text, "Name: Jane & Co")
	assert.Contains(t, note.Text, "line one\nline two")
}

func TestSubmissionReplyTo(t *testing.T) {
	assert.Equal(t, "b@x.io", Submission{Email: "a@x.io", BusinessEmail: "b@x.io"}.ReplyTo())
	assert.Equal(t, "a@x.io", Submission{Email: "a@x.io"}.ReplyTo())
}

func TestValidEmail(t *testing.T) {
	tests := map[string]bool{
		"jane@acme.io":          true,
		"first.last+tag@a.b.co": true,
		"":                      false,
		"jane":                  false,
		"jane@localhost":        false,
		"Jane <jane@acme.io>":   false,
		"jane@acme.":            false,
		"@acme.io":              false,
	}
	for in, want := range tests {
		assert.Equal(t, want, validEmail(in), "validEmail(%q)", in)
	}
}

func TestStatsRecentIsBounded(t *testing.T) {
	stats := NewStats(testStart)
	for i := 0; i < recentLimit+5; i++ {
		stats.record(Delivery{At: testStart.Add(time.Duration(i) * time.Second), Outcome: OutcomeSent})
	}
	snap := stats.Snapshot()
	assert.Equal(t, recentLimit+5, snap.Sent)
	require.Len(t, snap.Recent, recentLimit)
	assert.True(t, snap.Recent[0].At.Equal(testStart.Add(5*time.Second)))

	snap.Recent[0].Company = "mutated"
	assert.Empty(t, stats.Snapshot().Recent[0].Company)
}
