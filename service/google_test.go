package service

import "testing"

func TestAudienceMatches(t *testing.T) {
	const clientID = "tripper.apps.googleusercontent.com"

	if !audienceMatches(clientID, clientID, "") {
		t.Error("audience field should match")
	}
	if !audienceMatches(clientID, "", clientID) {
		t.Error("issued_to field should match")
	}
	if audienceMatches(clientID, "other-app.apps.googleusercontent.com", "") {
		t.Error("foreign audience should not match")
	}
	if audienceMatches(clientID, "", "") {
		t.Error("empty token info should not match")
	}
}
