package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualdoctor/pkg"
)

func TestInterpretTriageSkinReferral(t *testing.T) {
	var interp Interpreter

	events := interp.Interpret(pkg.SessionTriage, "I have a SKIN rash", "sorry to hear", nil)
	require.Len(t, events, 1)
	handoff, ok := events[0].(pkg.SpecialistHandoff)
	require.True(t, ok)
	assert.Equal(t, "skin", handoff.SpecialistID)
	assert.Equal(t, HandoffDelay, handoff.Delay)

	assert.Empty(t, interp.Interpret(pkg.SessionTriage, "I have a fever", "noted", nil))
	// The keyword only fires in the triage context.
	assert.Empty(t, interp.Interpret(pkg.SessionGeneral, "skin problems", "ok", nil))
}

func TestInterpretImagingRequiresImage(t *testing.T) {
	var interp Interpreter
	img := &pkg.ImageAttachment{Data: []byte{0xff}, MIMEType: "image/jpeg"}

	events := interp.Interpret(pkg.SessionImaging, "", "analysis text", img)
	require.Len(t, events, 1)
	ready, ok := events[0].(pkg.ImagingResultReady)
	require.True(t, ok)
	assert.Equal(t, "analysis text", ready.AnalysisText)
	assert.Same(t, img, ready.Image)

	assert.Empty(t, interp.Interpret(pkg.SessionImaging, "what does my scan show", "please upload", nil))
}

func TestInterpretDispatchConfirmation(t *testing.T) {
	var interp Interpreter

	for _, text := range []string{"yes, confirm", "YES", "please confirm it"} {
		events := interp.Interpret(pkg.SessionDispatch, text, "on the way", nil)
		require.Len(t, events, 1, "text %q", text)
		assert.IsType(t, pkg.DispatchTriggered{}, events[0])
	}
	assert.Empty(t, interp.Interpret(pkg.SessionDispatch, "not yet", "ok", nil))
	assert.Empty(t, interp.Interpret(pkg.SessionGeneral, "yes", "ok", nil))
}

func TestInterpretPrescriptionCode(t *testing.T) {
	var interp Interpreter

	events := interp.Interpret(pkg.SessionPharmacy, "123456", "checking", nil)
	require.Len(t, events, 1)
	verified, ok := events[0].(pkg.PrescriptionVerified)
	require.True(t, ok)
	assert.Equal(t, "123456", verified.Code)

	for _, text := range []string{"12345", "1234567", "12345a", "12 456", ""} {
		assert.Empty(t, interp.Interpret(pkg.SessionPharmacy, text, "checking", nil), "text %q", text)
	}
}

func TestInterpretAtMostOneEventPerSend(t *testing.T) {
	var interp Interpreter
	assert.Len(t, interp.Interpret(pkg.SessionTriage, "skin", "reply", nil), 1)
	assert.Empty(t, interp.Interpret(pkg.DoctorSession("doc-1"), "123456 skin yes", "reply", nil))
}
