package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorLookup(t *testing.T) {
	doctors := Doctors()
	require.Len(t, doctors, 20)

	doc, ok := DoctorByID("doc-0")
	require.True(t, ok)
	assert.Equal(t, "Dr. Abebe Kassa", doc.Name)
	assert.Equal(t, "Cardiologist", doc.Specialty)

	_, ok = DoctorByID("doc-20")
	assert.False(t, ok)
}

func TestSpecialistLookup(t *testing.T) {
	require.Len(t, Specialists(), 3)

	sp, ok := SpecialistByID("skin")
	require.True(t, ok)
	assert.Equal(t, "Dr. Almaz", sp.Name)
	assert.Equal(t, "Skin Specialist", sp.Type)

	_, ok = SpecialistByID("lungs")
	assert.False(t, ok)
}

func TestPharmacyCatalogs(t *testing.T) {
	require.Len(t, Products(), 6)

	partners := PharmaciesIn("Addis Ababa")
	require.Len(t, partners, 3)
	assert.Equal(t, "Kenema Pharmacy", partners[0].Name)

	assert.Empty(t, PharmaciesIn("Mekelle"))
}

func TestCatalogsReturnCopies(t *testing.T) {
	Doctors()[0].Name = "mutated"
	assert.Equal(t, "Dr. Abebe Kassa", Doctors()[0].Name)

	partners := PharmaciesIn("Dire Dawa")
	require.Len(t, partners, 1)
	partners[0].Name = "mutated"
	assert.Equal(t, "Dire Pharmacy", PharmaciesIn("Dire Dawa")[0].Name)
}
