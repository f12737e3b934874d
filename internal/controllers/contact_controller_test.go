package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/lquan-tech/porfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactController(metrics *testutil.MockMetrics) *ContactController {
	conf := &structures.Config{}
	return NewContactController(&mockLogger{}, metrics, conf)
}

func submit(t *testing.T, cc *ContactController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	cc.Submit(rr, req)
	return rr
}

const validContact = `{
	"name": "Ada Lovelace",
	"email": "ada@example.com",
	"subject": "Hello",
	"message": "I would like to talk about a project."
}`

func TestSubmit_ValidMessageAccepted(t *testing.T) {
	metrics := &testutil.MockMetrics{}
	cc := newContactController(metrics)

	rr := submit(t, cc, validContact)

	require.Equal(t, http.StatusAccepted, rr.Code)
	var receipt models.ContactReceipt
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 1, metrics.ContactAccepted)
}

func TestSubmit_InvalidJSON(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	rr := submit(t, cc, "not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_MissingEmail(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	rr := submit(t, cc, `{"name":"Ada Lovelace","message":"A long enough message."}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_MalformedEmail(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	rr := submit(t, cc, `{"name":"Ada Lovelace","email":"not-an-email","message":"A long enough message."}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestSubmit_MessageTooShort(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	rr := submit(t, cc, `{"name":"Ada Lovelace","email":"ada@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_WhitespaceOnlyFieldsRejected(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	rr := submit(t, cc, `{"name":"   ","email":"ada@example.com","message":"A long enough message."}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_ConfiguredLengthLimit(t *testing.T) {
	conf := &structures.Config{}
	conf.Contact.MaxMessageLen = 20
	cc := NewContactController(&mockLogger{}, &testutil.MockMetrics{}, conf)

	rr := submit(t, cc, `{"name":"Ada Lovelace","email":"ada@example.com","message":"This message is clearly longer than twenty characters."}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmit_OversizedBody(t *testing.T) {
	cc := newContactController(&testutil.MockMetrics{})

	big := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", maxContactBodySize+1) + `"}`
	rr := submit(t, cc, big)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
