package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/syncbridge-go/response"
	"github.com/stretchr/testify/require"
)

func createForm(t *testing.T, token, title string) response.FormView {
	body := map[string]string{
		"title":         title,
		"message":       "build it",
		"budget":        "40000",
		"expected_time": "3 months",
	}
	resp := doRequest(t, "POST", "/forms", token, body, http.StatusCreated)

	var form response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &form))
	require.Equal(t, "preview", form.Status)
	return form
}

func requestStatus(t *testing.T, token string, formID uint, status string, expectCode int) response.TransitionResponse {
	resp := doRequest(t, "PATCH", fmt.Sprintf("/forms/%d/status", formID), token,
		map[string]string{"status": status}, expectCode)

	var result response.TransitionResponse
	if expectCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	}
	return result
}

func TestFormLifecycle_HappyPath(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	dana := loginUser(t, "dana@test.com", "123456")

	form := createForm(t, chad, "CRM rebuild")

	// Chad publishes.
	result := requestStatus(t, chad, form.ID, "available", http.StatusOK)
	require.True(t, result.Committed)
	require.Equal(t, "available", result.Status)

	// Dana takes the order and gets bound.
	result = requestStatus(t, dana, form.ID, "processing", http.StatusOK)
	require.True(t, result.Committed)

	resp := doRequest(t, "GET", fmt.Sprintf("/forms/%d", form.ID), dana, nil, http.StatusOK)
	var got response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.NotNil(t, got.DeveloperID)

	// Completion needs both votes.
	result = requestStatus(t, dana, form.ID, "end", http.StatusOK)
	require.False(t, result.Committed)
	require.Equal(t, "processing", result.Status)
	require.Equal(t, 1, result.ApprovalFlags)

	result = requestStatus(t, chad, form.ID, "end", http.StatusOK)
	require.True(t, result.Committed)
	require.Equal(t, "end", result.Status)
	require.Equal(t, 0, result.ApprovalFlags)

	// Terminal: nothing moves anymore.
	requestStatus(t, chad, form.ID, "processing", http.StatusConflict)
}

func TestFormLifecycle_IllegalJumpsRejected(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	form := createForm(t, chad, "Skipping ahead")

	requestStatus(t, chad, form.ID, "end", http.StatusConflict)
	requestStatus(t, chad, form.ID, "processing", http.StatusConflict)

	// The form is untouched by the rejected requests.
	resp := doRequest(t, "GET", fmt.Sprintf("/forms/%d", form.ID), chad, nil, http.StatusOK)
	var got response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Equal(t, "preview", got.Status)
}

func TestFormLifecycle_TakeRequiresDeveloper(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	form := createForm(t, chad, "Client cannot take")

	requestStatus(t, chad, form.ID, "available", http.StatusOK)
	requestStatus(t, chad, form.ID, "processing", http.StatusForbidden)
}

func TestSubformNegotiation_MergeFlow(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	dana := loginUser(t, "dana@test.com", "123456")

	form := createForm(t, chad, "Negotiable scope")
	requestStatus(t, chad, form.ID, "available", http.StatusOK)
	requestStatus(t, dana, form.ID, "processing", http.StatusOK)

	// Dana opens an amendment proposal; the parent drops to rewrite.
	resp := doRequest(t, "POST", fmt.Sprintf("/forms/%d/subform", form.ID), dana, map[string]string{
		"title":         "Bigger scope",
		"message":       "more work, more money",
		"budget":        "55000",
		"expected_time": "5 months",
	}, http.StatusCreated)
	var sub response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sub))
	require.Equal(t, "subform", sub.Type)
	require.Equal(t, "rewrite", sub.Status)

	resp = doRequest(t, "GET", fmt.Sprintf("/forms/%d", form.ID), chad, nil, http.StatusOK)
	var parent response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parent))
	require.Equal(t, "rewrite", parent.Status)
	require.NotNil(t, parent.SubformID)

	// A second proposal on the same parent is refused.
	doRequest(t, "POST", fmt.Sprintf("/forms/%d/subform", form.ID), dana, map[string]string{
		"title": "x", "message": "y", "budget": "1", "expected_time": "1d",
	}, http.StatusConflict)

	// Dana adds a line item to the proposal.
	doRequest(t, "POST", fmt.Sprintf("/forms/%d/functions", sub.ID), dana, map[string]string{
		"name": "reporting", "choice": "enterprise", "description": "quarterly reports",
	}, http.StatusCreated)

	// Chad accepts the proposal by merging it back.
	resp = doRequest(t, "POST", fmt.Sprintf("/forms/%d/merge", form.ID), chad, nil, http.StatusOK)
	var merged response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &merged))
	require.Equal(t, "Bigger scope", merged.Title)
	require.Equal(t, "55000", merged.Budget)
	require.Equal(t, "processing", merged.Status)
	require.Nil(t, merged.SubformID)
	require.Equal(t, 0, merged.ApprovalFlags)

	// The subform row is gone.
	doRequest(t, "GET", fmt.Sprintf("/forms/%d", sub.ID), dana, nil, http.StatusNotFound)

	// The merged line items came along.
	resp = doRequest(t, "GET", fmt.Sprintf("/forms/%d/functions", form.ID), chad, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "reporting")

	// And a second merge has nothing left to take.
	doRequest(t, "POST", fmt.Sprintf("/forms/%d/merge", form.ID), chad, nil, http.StatusNotFound)
}

func TestSubformNegotiation_DiscardFailed(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	dana := loginUser(t, "dana@test.com", "123456")

	form := createForm(t, chad, "Doomed negotiation")
	requestStatus(t, chad, form.ID, "available", http.StatusOK)
	requestStatus(t, dana, form.ID, "processing", http.StatusOK)

	resp := doRequest(t, "POST", fmt.Sprintf("/forms/%d/subform", form.ID), dana, map[string]string{
		"title": "No deal", "message": "t", "budget": "1", "expected_time": "1d",
	}, http.StatusCreated)
	var sub response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sub))

	// Dana gives up and flags the negotiation as failed.
	doRequest(t, "DELETE", fmt.Sprintf("/forms/%d?negotiation_failed=true", sub.ID), dana, nil, http.StatusOK)

	resp = doRequest(t, "GET", fmt.Sprintf("/forms/%d", form.ID), chad, nil, http.StatusOK)
	var parent response.FormView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parent))
	require.Equal(t, "error", parent.Status)
	require.Nil(t, parent.SubformID)
}

func TestFormAccess_StrangerCannotSee(t *testing.T) {
	chad := loginUser(t, "chad@test.com", "123456")
	form := createForm(t, chad, "Private draft")

	registerUserForTests("eve@test.com", "123456", "Eve")
	grantRole("eve@test.com", "client")
	eve := loginUser(t, "eve@test.com", "123456")

	doRequest(t, "GET", fmt.Sprintf("/forms/%d", form.ID), eve, nil, http.StatusForbidden)
}
