package models

import "sort"

// TemplateEntry is one counter definition inside a template.
type TemplateEntry struct {
	Name            string
	TargetCount     int
	Arabic          string
	Transliteration string
}

// Template is a predefined bundle of counter definitions instantiated
// together.
type Template struct {
	Name        string
	Description string
	Tasbihs     []TemplateEntry
}

// DhikrTemplates is the fixed catalog of preset dhikr sets.
var DhikrTemplates = map[string]Template{
	"after-salah": {
		Name:        "Set Selepas Solat",
		Description: "Set lengkap zikir selepas solat fardhu",
		Tasbihs: []TemplateEntry{
			{Name: "SubhanAllah", TargetCount: 33, Arabic: "سُبْحَانَ ٱللَّٰهِ", Transliteration: "Subḥān Allāh"},
			{Name: "Alhamdulillah", TargetCount: 33, Arabic: "ٱلْحَمْدُ لِلَّٰهِ", Transliteration: "Al-ḥamdu lillāh"},
			{Name: "Allahu Akbar", TargetCount: 34, Arabic: "ٱللَّٰهُ أَكْبَرُ", Transliteration: "Allāhu akbar"},
		},
	},
	"morning": {
		Name:        "Zikir Pagi",
		Description: "Zikir pagi yang penting",
		Tasbihs: []TemplateEntry{
			{Name: "Ayat al-Kursi", TargetCount: 1, Arabic: "آيَةُ ٱلْكُرْسِيِّ", Transliteration: "Āyat al-Kursī"},
			{Name: "Last 3 Surahs", TargetCount: 3, Arabic: "ٱلْمُعَوِّذَات", Transliteration: "Al-Mu'awwidhāt"},
			{Name: "SubhanAllah wa bihamdihi", TargetCount: 100, Arabic: "سُبْحَانَ ٱللَّٰهِ وَبِحَمْدِهِ", Transliteration: "Subḥān Allāhi wa biḥamdih"},
		},
	},
	"evening": {
		Name:        "Zikir Petang",
		Description: "Zikir petang yang penting",
		Tasbihs: []TemplateEntry{
			{Name: "Ayat al-Kursi", TargetCount: 1, Arabic: "آيَةُ ٱلْكُرْسِيِّ", Transliteration: "Āyat al-Kursī"},
			{Name: "Last 3 Surahs", TargetCount: 3, Arabic: "ٱلْمُعَوِّذَات", Transliteration: "Al-Mu'awwidhāt"},
			{Name: "SubhanAllah wa bihamdihi", TargetCount: 100, Arabic: "سُبْحَانَ ٱللَّٰهِ وَبِحَمْدِهِ", Transliteration: "Subḥān Allāhi wa biḥamdih"},
		},
	},
	"common": {
		Name:        "Zikir Biasa",
		Description: "Zikir yang paling biasa dibaca",
		Tasbihs: []TemplateEntry{
			{Name: "SubhanAllah", TargetCount: 33, Arabic: "سُبْحَانَ ٱللَّٰهِ", Transliteration: "Subḥān Allāh"},
			{Name: "Alhamdulillah", TargetCount: 33, Arabic: "ٱلْحَمْدُ لِلَّٰهِ", Transliteration: "Al-ḥamdu lillāh"},
			{Name: "Allahu Akbar", TargetCount: 33, Arabic: "ٱللَّٰهُ أَكْبَرُ", Transliteration: "Allāhu akbar"},
			{Name: "La ilaha illallah", TargetCount: 100, Arabic: "لَا إِلَٰهَ إِلَّا ٱللَّٰهُ", Transliteration: "Lā ilāha illā Allāh"},
			{Name: "Astaghfirullah", TargetCount: 100, Arabic: "أَسْتَغْفِرُ ٱللَّٰهَ", Transliteration: "Astaghfiru Allāh"},
		},
	},
	"daily100": {
		Name:        "Harian 100",
		Description: "Zikir harian yang disyorkan (100 kali setiap satu)",
		Tasbihs: []TemplateEntry{
			{Name: "SubhanAllah wa bihamdihi", TargetCount: 100, Arabic: "سُبْحَانَ ٱللَّٰهِ وَبِحَمْدِهِ", Transliteration: "Subḥān Allāhi wa biḥamdih"},
			{Name: "Astaghfirullah", TargetCount: 100, Arabic: "أَسْتَغْفِرُ ٱللَّٰهَ", Transliteration: "Astaghfiru Allāh"},
			{Name: "La hawla wa la quwwata illa billah", TargetCount: 100, Arabic: "لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِٱللَّٰهِ", Transliteration: "Lā ḥawla wa lā quwwata illā billāh"},
		},
	},
}

// TemplateKeys returns the catalog keys in stable order.
func TemplateKeys() []string {
	keys := make([]string, 0, len(DhikrTemplates))
	for k := range DhikrTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
