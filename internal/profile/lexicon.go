package profile

// Skill terms scanned against resume text. Matching is case-insensitive
// substring search; matched terms are title-cased in the output.
var technicalSkills = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue", "node.js",
	"django", "flask", "spring", "express", "mongodb", "postgresql", "mysql", "sql",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "github", "gitlab",
	"machine learning", "ml", "artificial intelligence", "ai", "data science",
	"deep learning", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"opencv", "nlp", "natural language processing", "computer vision", "blockchain",
	"ethereum", "solidity", "web3", "mobile development", "ios", "android",
	"flutter", "react native", "swift", "kotlin", "cybersecurity", "penetration testing",
	"devops", "ci/cd", "jenkins", "terraform", "ansible", "linux", "unix",
	"c++", "c#", ".net", "php", "ruby", "go", "rust", "scala", "r",
	"tableau", "power bi", "excel", "nosql", "redis", "elasticsearch",
	"kafka", "rabbitmq", "microservices", "api", "rest", "graphql",
	"frontend", "backend", "full stack", "ui/ux", "design", "figma",
	"adobe", "photoshop", "illustrator", "sketch", "agile", "scrum",
}

var softSkills = []string{
	"leadership", "teamwork", "communication", "problem solving", "analytical",
	"creative", "innovative", "adaptable", "time management", "project management",
	"mentoring", "collaboration", "presentation", "negotiation", "critical thinking",
}

// Education keyword lists in strict priority order: the first level with any
// hit wins.
type educationLevel struct {
	label    string
	keywords []string
}

var educationLevels = []educationLevel{
	{"PhD", []string{"phd", "doctorate", "doctoral", "ph.d"}},
	{"PG", []string{"masters", "mba", "mtech", "ms", "postgraduate", "m.sc", "m.a", "m.com"}},
	{"UG", []string{"bachelor", "btech", "bca", "bsc", "undergraduate", "ug", "b.e", "b.a", "b.com"}},
}

const educationUnknown = "Unknown"

var internshipKeywords = []string{"intern", "internship", "trainee", "co-op"}

var projectKeywords = []string{"project", "portfolio", "github", "repository"}

// Interest domains in fixed enumeration order. A domain label is added once
// when any of its keywords appears anywhere in the text.
type interestDomain struct {
	label    string
	keywords []string
}

var interestDomains = []interestDomain{
	{"AI/ML", []string{"artificial intelligence", "machine learning", "deep learning", "neural networks", "ai", "ml"}},
	{"Web Development", []string{"web development", "frontend", "backend", "full stack", "web applications"}},
	{"Data Science", []string{"data science", "data analysis", "data visualization", "statistics", "analytics"}},
	{"Mobile Development", []string{"mobile development", "ios", "android", "mobile apps", "react native", "flutter"}},
	{"Blockchain", []string{"blockchain", "cryptocurrency", "ethereum", "solidity", "web3", "defi"}},
	{"Cybersecurity", []string{"cybersecurity", "security", "penetration testing", "ethical hacking"}},
	{"DevOps", []string{"devops", "deployment", "ci/cd", "infrastructure", "cloud"}},
	{"Game Development", []string{"game development", "unity", "unreal engine", "gaming"}},
	{"UI/UX", []string{"ui/ux", "user interface", "user experience", "design", "figma", "sketch"}},
}
