package model

import (
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Status represents the pipeline stage of a job application.
// The string value is the code persisted in the database.
type Status string

const (
	StatusSent       Status = "SENT"
	StatusInProgress Status = "IN_PROGRESS"
	StatusInterview  Status = "INTERVIEW"
	StatusRejected   Status = "REJECTED"
	StatusNoResponse Status = "NO_RESPONSE"
)

// Statuses lists every canonical status in pipeline order.
var Statuses = []Status{
	StatusSent,
	StatusInProgress,
	StatusInterview,
	StatusRejected,
	StatusNoResponse,
}

var apiTokens = map[Status]string{
	StatusSent:       "ENVIADA",
	StatusInProgress: "EN_PROCESO",
	StatusInterview:  "ENTREVISTA",
	StatusRejected:   "RECHAZADA",
	StatusNoResponse: "SIN_RESPUESTA",
}

var statusLookup = buildStatusLookup()

func buildStatusLookup() map[string]Status {
	lookup := make(map[string]Status, len(apiTokens)*2)
	for status, token := range apiTokens {
		lookup[string(status)] = status
		lookup[token] = status
	}
	return lookup
}

var separatorRun = regexp.MustCompile(`[\s-]+`)

// NormalizeStatus maps free-form status text to a canonical Status.
// Both the API tokens (EN_PROCESO) and the stored codes (IN_PROGRESS) are
// accepted, case-insensitively, with spaces or hyphens in place of underscores.
func NormalizeStatus(raw string) (Status, bool) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", false
	}
	key = strings.ToUpper(separatorRun.ReplaceAllString(key, "_"))
	status, ok := statusLookup[key]
	return status, ok
}

// StatusFromAPIToken decodes a wire token into a Status.
func StatusFromAPIToken(token string) (Status, bool) {
	for status, t := range apiTokens {
		if t == token {
			return status, true
		}
	}
	return "", false
}

// APIToken returns the token used on the wire for s.
func (s Status) APIToken() string {
	return apiTokens[s]
}

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	_, ok := apiTokens[s]
	return ok
}

// MarshalJSON emits the API token, never the stored code.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.APIToken())
}

var statusLabels = map[language.Tag]map[Status]string{
	language.Spanish: {
		StatusSent:       "Enviada",
		StatusInProgress: "En proceso",
		StatusInterview:  "Entrevista",
		StatusRejected:   "Rechazada",
		StatusNoResponse: "Sin respuesta",
	},
	language.English: {
		StatusSent:       "Sent",
		StatusInProgress: "In progress",
		StatusInterview:  "Interview",
		StatusRejected:   "Rejected",
		StatusNoResponse: "No response",
	},
}

// Spanish first: it is the fallback when nothing matches.
var labelMatcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// LabelLanguage picks the label language for an Accept-Language header value.
func LabelLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.Spanish
	}
	_, index, _ := labelMatcher.Match(tags...)
	if index == 1 {
		return language.English
	}
	return language.Spanish
}

// Label returns the display label of s in lang (Spanish when unsupported).
func (s Status) Label(lang language.Tag) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels[language.Spanish]
	}
	return labels[s]
}
