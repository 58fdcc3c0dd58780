package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualdoctor/internal/llm"
	"virtualdoctor/pkg"
)

var testSettings = Settings{Language: "Amharic", PatientName: "Selam"}

func TestComposeGeneralPersonalizes(t *testing.T) {
	var c Composer
	req, err := c.Compose(pkg.SessionGeneral, "hi", nil, nil, testSettings)
	require.NoError(t, err)

	assert.Equal(t, llm.VariantText, req.Variant)
	assert.Contains(t, req.SystemInstruction, "DR Biruk")
	assert.Contains(t, req.SystemInstruction, "Amharic")
	assert.Contains(t, req.SystemInstruction, "Selam")
	assert.Contains(t, req.SystemInstruction, "Telegram")
}

func TestComposeTriagePersona(t *testing.T) {
	var c Composer
	req, err := c.Compose(pkg.SessionTriage, "I feel sick", nil, nil, testSettings)
	require.NoError(t, err)

	assert.Contains(t, req.SystemInstruction, "Dr. Dagim")
	assert.Contains(t, req.SystemInstruction, "What are your symptoms?")
	assert.Contains(t, req.SystemInstruction, "How long have you felt this way?")
	assert.Contains(t, req.SystemInstruction, "Skin Specialist")
}

func TestComposeSpecialistUsesDeclaredTone(t *testing.T) {
	var c Composer
	req, err := c.Compose(pkg.SpecialistSession("heart"), "chest pain", nil, nil, testSettings)
	require.NoError(t, err)

	assert.Contains(t, req.SystemInstruction, "Dr. Kebede")
	assert.Contains(t, req.SystemInstruction, "Heart Specialist")
	assert.Contains(t, req.SystemInstruction, "Calm and reassuring")

	_, err = c.Compose(pkg.SpecialistSession("nope"), "hi", nil, nil, testSettings)
	assert.Error(t, err)
}

func TestComposeDoctorPersona(t *testing.T) {
	var c Composer
	req, err := c.Compose(pkg.DoctorSession("doc-1"), "hello doctor", nil, nil, testSettings)
	require.NoError(t, err)

	assert.Contains(t, req.SystemInstruction, "Dr. Tesfaye Bekele")
	assert.Contains(t, req.SystemInstruction, "Dermatologist")
	assert.Contains(t, req.SystemInstruction, "6-digit numeric code")

	_, err = c.Compose(pkg.DoctorSession("doc-99"), "hello", nil, nil, testSettings)
	assert.Error(t, err)
}

func TestComposeDispatchAndPharmacyAndImaging(t *testing.T) {
	var c Composer

	req, err := c.Compose(pkg.SessionDispatch, "help", nil, nil, testSettings)
	require.NoError(t, err)
	assert.Contains(t, req.SystemInstruction, "Emergency Ambulance Dispatcher")
	assert.Contains(t, req.SystemInstruction, "emergency type and location")

	req, err = c.Compose(pkg.SessionPharmacy, "paracetamol?", nil, nil, testSettings)
	require.NoError(t, err)
	assert.Contains(t, req.SystemInstruction, "shop assistant")
	assert.Contains(t, req.SystemInstruction, "6-digit prescription code")

	req, err = c.Compose(pkg.SessionImaging, "here is my scan", nil, nil, testSettings)
	require.NoError(t, err)
	assert.Contains(t, req.SystemInstruction, "MRI/Radiology")
	assert.Equal(t, llm.VariantText, req.Variant, "no image attached means text variant")
}

func TestComposeTextVariantCarriesHistory(t *testing.T) {
	var c Composer
	history := []pkg.ChatMessage{
		{Role: pkg.RoleUser, Text: "earlier question"},
		{Role: pkg.RoleModel, Text: "earlier answer"},
	}
	req, err := c.Compose(pkg.SessionGeneral, "follow-up", nil, history, testSettings)
	require.NoError(t, err)

	assert.Equal(t, llm.VariantText, req.Variant)
	assert.Equal(t, history, req.History)
	assert.Equal(t, "follow-up", req.Message)
	assert.Nil(t, req.Image)
}

func TestComposeImageForcesSingleShotMultimodal(t *testing.T) {
	var c Composer
	history := []pkg.ChatMessage{{Role: pkg.RoleUser, Text: "earlier"}}
	img := &pkg.ImageAttachment{Data: []byte{1, 2, 3}, MIMEType: "image/png"}

	req, err := c.Compose(pkg.SessionImaging, "what is this", img, history, testSettings)
	require.NoError(t, err)

	assert.Equal(t, llm.VariantMultimodal, req.Variant)
	assert.Empty(t, req.History, "multimodal requests omit the running history")
	assert.Same(t, img, req.Image)
	assert.Equal(t, "what is this", req.Message)
}

func TestComposeImageWithoutCaptionGetsDefaultMessage(t *testing.T) {
	var c Composer
	img := &pkg.ImageAttachment{Data: []byte{1}, MIMEType: "image/jpeg"}

	req, err := c.Compose(pkg.SessionImaging, "", img, nil, testSettings)
	require.NoError(t, err)
	assert.Equal(t, "Analyze this image for medical context.", req.Message)
}
