// Package geo holds the fixed district → area table used to populate
// owner profile forms.
package geo

import "sort"

var districts = map[string][]string{
	"Dhaka":      {"Dhanmondi", "Gulshan", "Banani", "Mirpur", "Uttara", "Mohammadpur", "Motijheel", "Bashundhara"},
	"Chattogram": {"Agrabad", "GEC Circle", "Nasirabad", "Halishahar", "Panchlaish"},
	"Sylhet":     {"Zindabazar", "Ambarkhana", "Uposhohor", "Shahjalal Upashahar"},
	"Rajshahi":   {"Shaheb Bazar", "Boalia", "Uposhohor", "Kazla"},
	"Khulna":     {"Sonadanga", "Khalishpur", "Daulatpur", "Boyra"},
	"Barishal":   {"Sadar Road", "Nathullabad", "Rupatali"},
	"Rangpur":    {"Jahaj Company More", "Dhap", "Modern More"},
	"Mymensingh": {"Ganginarpar", "Charpara", "Kewatkhali"},
}

type District struct {
	Name  string   `json:"name"`
	Areas []string `json:"areas"`
}

// Districts returns the table sorted by district name.
func Districts() []District {
	out := make([]District, 0, len(districts))
	for name, areas := range districts {
		cp := make([]string, len(areas))
		copy(cp, areas)
		out = append(out, District{Name: name, Areas: cp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func Areas(district string) ([]string, bool) {
	areas, ok := districts[district]
	if !ok {
		return nil, false
	}
	cp := make([]string, len(areas))
	copy(cp, areas)
	return cp, true
}

func IsValid(district, area string) bool {
	areas, ok := districts[district]
	if !ok {
		return false
	}
	for _, a := range areas {
		if a == area {
			return true
		}
	}
	return false
}
