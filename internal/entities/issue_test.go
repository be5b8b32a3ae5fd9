package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueDecodeStateShapes(t *testing.T) {
	payload := `[
		{"id":"1","state":"Open"},
		{"id":"2","state":{"name":"Done","presentation":"Done!"}},
		{"id":"3","state":{"localizedName":"Erledigt"}},
		{"id":"4","state":null,"customFields":[
			{"name":"Priority","value":{"name":"Major"}},
			{"name":"Estimation","value":3600},
			{"name":"Tags","value":[{"name":"a"}]},
			{"name":"State","value":{"presentation":"Testing"}}
		]},
		{"id":"5","customFields":[{"name":"State","value":"Fixed"}]},
		{"id":"6","state":{"name":42}}
	]`

	var issues []Issue
	require.NoError(t, json.Unmarshal([]byte(payload), &issues))
	require.Len(t, issues, 6)

	require.Equal(t, StateKindText, issues[0].State.Kind)
	require.Equal(t, "Open", issues[0].State.Text)

	require.Equal(t, StateKindObject, issues[1].State.Kind)
	require.Equal(t, "Done", issues[1].State.Name)
	require.Equal(t, "Done!", issues[1].State.Presentation)

	require.Equal(t, "Erledigt", issues[2].State.LocalizedName)

	require.Nil(t, issues[3].State)
	require.Len(t, issues[3].CustomFields, 4)
	require.Equal(t, StateKindOther, issues[3].CustomFields[1].Value.Kind)
	require.Equal(t, StateKindOther, issues[3].CustomFields[2].Value.Kind)
	require.Equal(t, "Testing", issues[3].CustomFields[3].Value.Presentation)

	require.Equal(t, StateKindText, issues[4].CustomFields[0].Value.Kind)

	require.Equal(t, StateKindObject, issues[5].State.Kind)
	require.Empty(t, issues[5].State.Name)
}

func TestStateValueIsPresent(t *testing.T) {
	var nilState *StateValue
	require.False(t, nilState.IsPresent())
	require.False(t, TextState("").IsPresent())
	require.True(t, TextState("Open").IsPresent())
	require.True(t, (&StateValue{Kind: StateKindObject}).IsPresent())
	require.False(t, (&StateValue{Kind: StateKindOther}).IsPresent())
}

func TestStateValueMarshalRoundTrip(t *testing.T) {
	issue := Issue{ID: "1", State: NamedState("Done")}
	raw, err := json.Marshal(issue)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"1","state":{"name":"Done"}}`, string(raw))
}

func TestProjectKeys(t *testing.T) {
	require.Equal(t, "WEB", Project{ID: "0-1", Name: "Web", ShortName: "WEB"}.QueryKey())
	require.Equal(t, "0-1", Project{ID: "0-1", Name: "Web"}.QueryKey())
	require.Equal(t, "Web", Project{ID: "0-1", Name: "Web"}.Label())
	require.Equal(t, "0-1", Project{ID: "0-1"}.Label())
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 401, Status: "Unauthorized", Path: "/api/issues", Body: "bad token"}
	require.ErrorIs(t, err, ErrUpstream)
	require.Equal(t, "youtrack api error (/api/issues): 401 Unauthorized: bad token", err.Error())

	err.Body = ""
	require.Equal(t, "youtrack api error (/api/issues): 401 Unauthorized", err.Error())
}
