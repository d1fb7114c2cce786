package profile

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

const sampleResume = `I have 5 years of experience in software.
Worked at Acme Corp. Built machine learning projects in Python with TensorFlow.
Bachelor of Technology.`

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func TestParseTextSampleResume(t *testing.T) {
	fragment := NewExtractor(nil).ParseText(sampleResume)

	for _, skill := range []string{"Python", "Machine Learning", "Tensorflow"} {
		if !containsString(fragment.Skills, skill) {
			t.Fatalf("expected skill %q in %v", skill, fragment.Skills)
		}
	}

	if fragment.EducationLevel != "UG" {
		t.Fatalf("expected UG education level, got %q", fragment.EducationLevel)
	}

	if fragment.Experience.Years != 5 {
		t.Fatalf("expected 5 years of experience, got %d", fragment.Experience.Years)
	}

	if !containsString(fragment.Experience.Companies, "Acme Corp") {
		t.Fatalf("expected Acme Corp in %v", fragment.Experience.Companies)
	}

	if len(fragment.Interests) != 1 || fragment.Interests[0] != "AI/ML" {
		t.Fatalf("expected interests [AI/ML], got %v", fragment.Interests)
	}
}

func TestParseTextConcurrent(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(nil)
	want := extractor.ParseText(sampleResume)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := extractor.ParseText(sampleResume)
				if !reflect.DeepEqual(got.Skills, want.Skills) ||
					!reflect.DeepEqual(got.Experience.Companies, want.Experience.Companies) {
					t.Errorf("expected %+v, got %+v", want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseTextEmptyYieldsEmptyFragment(t *testing.T) {
	fragment := NewExtractor(nil).ParseText("")

	if len(fragment.Skills) != 0 || fragment.EducationLevel != "" ||
		len(fragment.Interests) != 0 || fragment.Experience.Years != 0 {
		t.Fatalf("expected empty fragment, got %+v", fragment)
	}
}

func TestEducationLevelPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"phd wins over masters", "completed phd after masters", "PhD"},
		{"masters wins over bachelor", "masters degree, previously bachelor", "PG"},
		{"bachelor alone", "bachelor of science", "UG"},
		{"nothing recognized", "no formal schooling listed here", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractEducationLevel(strings.ToLower(tt.text)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExperienceCountsEveryOccurrence(t *testing.T) {
	fragment := NewExtractor(nil).ParseText("internship intern trainee project project github")

	// "intern" matches inside "internship" too, so the raw occurrence count is
	// intern x2 + internship x1 + trainee x1.
	if fragment.Experience.Internships != 4 {
		t.Fatalf("expected 4 internship signals, got %d", fragment.Experience.Internships)
	}
	if fragment.Experience.Projects != 3 {
		t.Fatalf("expected 3 project signals, got %d", fragment.Experience.Projects)
	}
}

func TestExperienceKeepsLargestYears(t *testing.T) {
	fragment := NewExtractor(nil).ParseText(
		"2 years of experience at first job, then 7 years of experience overall")

	if fragment.Experience.Years != 7 {
		t.Fatalf("expected 7 years, got %d", fragment.Experience.Years)
	}
}

func TestCompaniesDeduplicated(t *testing.T) {
	fragment := NewExtractor(nil).ParseText("worked at acme. later also worked at acme.")

	count := 0
	for _, company := range fragment.Experience.Companies {
		if strings.HasPrefix(company, "Acme") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Acme once, got %v", fragment.Experience.Companies)
	}
}
