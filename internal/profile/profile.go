package profile

// Experience aggregates work-history signals extracted from a resume.
// Internship and project counts are raw keyword occurrence counts.
type Experience struct {
	Years       int
	Internships int
	Projects    int
	Companies   []string
}

// Profile is the session-scoped user profile driving recommendations. It is
// merged, never replaced: resume extraction and manual edits both layer onto
// whatever the session already knows.
type Profile struct {
	Skills             []string
	EducationLevel     string
	PreferredLocation  string
	PreferredMode      string
	StipendExpectation string
	Interests          []string
	Experience         Experience
}

// Merge layers a fragment onto the profile. Non-empty scalar fields
// overwrite, list fields union preserving order and uniqueness, and numeric
// experience signals keep the larger value. Empty fragment fields never erase
// session state.
func (p *Profile) Merge(fragment *Profile) {
	if fragment == nil {
		return
	}

	p.Skills = mergeLists(p.Skills, fragment.Skills)
	p.Interests = mergeLists(p.Interests, fragment.Interests)

	if fragment.EducationLevel != "" {
		p.EducationLevel = fragment.EducationLevel
	}
	if fragment.PreferredLocation != "" {
		p.PreferredLocation = fragment.PreferredLocation
	}
	if fragment.PreferredMode != "" {
		p.PreferredMode = fragment.PreferredMode
	}
	if fragment.StipendExpectation != "" {
		p.StipendExpectation = fragment.StipendExpectation
	}

	if fragment.Experience.Years > p.Experience.Years {
		p.Experience.Years = fragment.Experience.Years
	}
	if fragment.Experience.Internships > p.Experience.Internships {
		p.Experience.Internships = fragment.Experience.Internships
	}
	if fragment.Experience.Projects > p.Experience.Projects {
		p.Experience.Projects = fragment.Experience.Projects
	}
	p.Experience.Companies = mergeLists(p.Experience.Companies, fragment.Experience.Companies)
}

func mergeLists(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]string, 0, len(existing)+len(incoming))

	for _, value := range existing {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		merged = append(merged, value)
	}
	for _, value := range incoming {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		merged = append(merged, value)
	}

	if len(merged) == 0 {
		return existing
	}
	return merged
}
