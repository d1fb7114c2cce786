package query

// Lexicons are ordered slices, not sets: for single-valued criteria the first
// entry found in the query wins, so enumeration order is part of the contract.

var locationLexicon = []string{
	"bangalore", "mumbai", "delhi", "hyderabad", "chennai",
	"pune", "kolkata", "gurgaon", "noida", "india",
}

type modeKeyword struct {
	keyword   string
	canonical string
}

var modeLexicon = []modeKeyword{
	{"remote", "Remote"},
	{"onsite", "Onsite"},
	{"office", "Onsite"},
	{"hybrid", "Hybrid"},
}

var skillLexicon = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js",
	"django", "flask", "machine learning", "ai", "data science",
	"web development", "mobile development", "android", "ios",
}

var organizationLexicon = []string{
	"google", "microsoft", "amazon", "facebook", "apple",
	"netflix", "uber", "airbnb", "tesla",
}

var tagLexicon = []string{
	"ai/ml", "web development", "data science", "mobile",
	"blockchain", "cybersecurity", "devops",
}
