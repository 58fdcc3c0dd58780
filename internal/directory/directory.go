// Package directory holds the portal's static catalogs: the doctor
// directory, the specialist roster, the pharmacy shelf and partner lists,
// and the supported cities. The prompt composer resolves doctor and
// specialist personas through these lookups; everything else is served to
// the caller as-is.
package directory

import "fmt"

// Doctor is an entry in the doctor directory.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Online    bool   `json:"online"`
}

// Specialist is a consultation persona with a declared tone.
type Specialist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Personality string `json:"personality"`
}

// Product is a pharmacy shelf item.
type Product struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Price                int    `json:"price"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

// Pharmacy is a partner store in a city.
type Pharmacy struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Cities supported by the portal.
var Cities = []string{
	"Addis Ababa", "Dire Dawa", "Mekelle", "Gondar", "Bahir Dar",
	"Dessie", "Jimma", "Bishoftu", "Awasa", "Sodo",
	"Arba Minch", "Hosaena", "Dilla", "Nekemte", "Debre Birhan", "Asella",
}

var (
	firstNames  = []string{"Abebe", "Tesfaye", "Mulugeta", "Hanna", "Selam", "Dawit", "Elias", "Sara", "Yonas", "Kaleb"}
	lastNames   = []string{"Kassa", "Bekele", "Tadesse", "Girma", "Haile"}
	specialties = []string{"Cardiologist", "Dermatologist", "Neurologist", "Pediatrician", "Surgeon"}
)

var doctors = buildDoctors(20)

func buildDoctors(n int) []Doctor {
	out := make([]Doctor, n)
	for i := 0; i < n; i++ {
		out[i] = Doctor{
			ID:        fmt.Sprintf("doc-%d", i),
			Name:      fmt.Sprintf("Dr. %s %s", firstNames[i%len(firstNames)], lastNames[i%len(lastNames)]),
			Specialty: specialties[i%len(specialties)],
			Online:    i%3 != 0,
		}
	}
	return out
}

var specialistRoster = []Specialist{
	{ID: "skin", Name: "Dr. Almaz", Type: "Skin Specialist", Personality: "Professional and detailed"},
	{ID: "heart", Name: "Dr. Kebede", Type: "Heart Specialist", Personality: "Calm and reassuring"},
	{ID: "kidney", Name: "Dr. Selam", Type: "Kidney Specialist", Personality: "Efficient and direct"},
}

var products = []Product{
	{ID: "p1", Name: "Pain Relief (Paracetamol)", Price: 150, RequiresPrescription: false},
	{ID: "p2", Name: "Antibiotics (Amoxicillin)", Price: 450, RequiresPrescription: true},
	{ID: "p3", Name: "Cough Syrup", Price: 280, RequiresPrescription: false},
	{ID: "p4", Name: "Insulin Pen", Price: 1200, RequiresPrescription: true},
	{ID: "p5", Name: "Vitamin C", Price: 90, RequiresPrescription: false},
	{ID: "p6", Name: "Blood Pressure Meds", Price: 600, RequiresPrescription: true},
}

var pharmacies = map[string][]Pharmacy{
	"Addis Ababa": {
		{Name: "Kenema Pharmacy", Location: "Piazza"},
		{Name: "Lion Pharmacy", Location: "Bole"},
		{Name: "Red Cross Pharmacy", Location: "Stadium"},
	},
	"Dire Dawa": {
		{Name: "Dire Pharmacy", Location: "Center"},
	},
}

// Doctors returns the full doctor directory.
func Doctors() []Doctor {
	out := make([]Doctor, len(doctors))
	copy(out, doctors)
	return out
}

// DoctorByID looks up a directory doctor.
func DoctorByID(id string) (Doctor, bool) {
	for _, d := range doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// Specialists returns the specialist roster.
func Specialists() []Specialist {
	out := make([]Specialist, len(specialistRoster))
	copy(out, specialistRoster)
	return out
}

// SpecialistByID looks up a specialist.
func SpecialistByID(id string) (Specialist, bool) {
	for _, s := range specialistRoster {
		if s.ID == id {
			return s, true
		}
	}
	return Specialist{}, false
}

// Products returns the pharmacy shelf.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// PharmaciesIn returns the partner pharmacies for a city. Cities without
// partners return an empty list.
func PharmaciesIn(city string) []Pharmacy {
	out := make([]Pharmacy, len(pharmacies[city]))
	copy(out, pharmacies[city])
	return out
}
