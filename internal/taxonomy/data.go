package taxonomy

var defaultCategories = []Category{
	{Name: "programming", Skills: []string{
		"python", "java", "c++", "c#", "javascript", "typescript", "ruby", "go", "golang",
		"rust", "php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash", "shell",
		"objective-c", "visual basic", "vb.net", "fortran", "cobol", "lua", "dart",
	}},
	{Name: "web", Skills: []string{
		"html", "html5", "css", "css3", "sass", "less", "bootstrap", "tailwind",
		"react", "react.js", "vue", "vue.js", "angular", "angularjs", "next.js", "nuxt.js",
		"svelte", "ember", "backbone", "jquery", "webpack", "babel", "vite",
	}},
	{Name: "backend", Skills: []string{
		"node.js", "nodejs", "express", "express.js", "flask", "django", "fastapi",
		"spring", "spring boot", ".net", "asp.net", "rails", "ruby on rails",
		"laravel", "symfony", "gin", "echo", "fiber", "actix",
	}},
	{Name: "database", Skills: []string{
		"sql", "nosql", "postgresql", "postgres", "mysql", "mariadb", "oracle",
		"sql server", "mongodb", "cassandra", "redis", "elasticsearch", "dynamodb",
		"firestore", "firebase", "neo4j", "graphql", "prisma", "sequelize",
		"database design", "data modeling", "indexing", "query optimization",
	}},
	{Name: "devops", Skills: []string{
		"docker", "kubernetes", "k8s", "jenkins", "github actions", "gitlab ci",
		"ci/cd", "continuous integration", "continuous deployment", "terraform",
		"ansible", "puppet", "chef", "helm", "argocd", "prometheus", "grafana",
		"elk stack", "datadog", "new relic",
	}},
	{Name: "cloud", Skills: []string{
		"aws", "amazon web services", "ec2", "s3", "lambda", "rds", "dynamodb",
		"azure", "microsoft azure", "gcp", "google cloud platform", "google cloud",
		"cloud computing", "serverless", "microservices", "cloud architecture",
		"cloud native", "paas", "iaas", "saas",
	}},
	{Name: "data science", Skills: []string{
		"machine learning", "deep learning", "artificial intelligence", "ai", "ml",
		"data science", "data analysis", "data analytics", "statistics", "statistical analysis",
		"pandas", "numpy", "scipy", "scikit-learn", "sklearn", "tensorflow", "pytorch",
		"keras", "xgboost", "lightgbm", "nlp", "natural language processing",
		"computer vision", "opencv", "neural networks", "random forest", "svm",
	}},
	{Name: "business intelligence", Skills: []string{
		"tableau", "power bi", "looker", "qlik", "data visualization", "dashboards",
		"reporting", "etl", "data warehousing", "business intelligence", "bi",
	}},
	{Name: "mobile", Skills: []string{
		"ios", "android", "react native", "flutter", "xamarin", "swift", "swiftui",
		"kotlin", "java", "mobile development", "app development",
	}},
	{Name: "testing", Skills: []string{
		"unit testing", "integration testing", "test automation", "selenium",
		"cypress", "jest", "mocha", "pytest", "junit", "testng", "cucumber",
		"qa", "quality assurance", "test driven development", "tdd", "bdd",
	}},
	{Name: "security", Skills: []string{
		"cybersecurity", "information security", "network security", "application security",
		"penetration testing", "ethical hacking", "vulnerability assessment", "siem",
		"firewall", "ids", "ips", "encryption", "ssl", "tls", "oauth", "jwt",
		"security auditing", "compliance", "gdpr", "pci dss", "iso 27001",
	}},
	{Name: "version control", Skills: []string{
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial", "perforce",
		"version control", "source control", "branching", "merging", "pull requests",
	}},
	{Name: "project management", Skills: []string{
		"agile", "scrum", "kanban", "waterfall", "project management", "product management",
		"jira", "confluence", "trello", "asana", "monday.com", "sprint planning",
		"backlog", "user stories", "epics", "roadmap", "stakeholder management",
	}},
	{Name: "business", Skills: []string{
		"business analysis", "business development", "strategy", "consulting",
		"market research", "competitive analysis", "swot analysis", "roi analysis",
		"kpi", "okr", "business process", "process improvement", "six sigma", "lean",
	}},
	{Name: "finance", Skills: []string{
		"finance", "accounting", "financial analysis", "financial modeling",
		"budgeting", "forecasting", "valuation", "investment", "portfolio management",
		"risk management", "audit", "tax", "gaap", "ifrs", "excel", "financial reporting",
	}},
	{Name: "marketing", Skills: []string{
		"marketing", "digital marketing", "seo", "sem", "ppc", "google ads",
		"facebook ads", "social media marketing", "content marketing", "email marketing",
		"marketing automation", "hubspot", "salesforce", "crm", "lead generation",
	}},
	{Name: "supply chain", Skills: []string{
		"supply chain", "logistics", "procurement", "inventory management",
		"warehouse management", "transportation", "distribution", "erp", "sap",
		"oracle scm", "demand planning", "forecasting", "vendor management",
	}},
	{Name: "engineering", Skills: []string{
		"mechanical engineering", "electrical engineering", "civil engineering",
		"chemical engineering", "biomedical engineering", "industrial engineering",
		"systems engineering", "quality engineering",
	}},
	{Name: "hardware", Skills: []string{
		"autocad", "solidworks", "catia", "ansys", "matlab", "simulink",
		"labview", "pcb design", "fpga", "vhdl", "verilog", "embedded systems",
		"microcontrollers", "arduino", "raspberry pi", "plc", "scada",
	}},
	{Name: "legal", Skills: []string{
		"law", "legal", "litigation", "contracts", "intellectual property",
		"patent", "trademark", "copyright", "compliance", "regulatory", "gdpr",
		"corporate law", "employment law", "real estate law", "tax law",
	}},
	{Name: SoftSkillsCategory, Skills: []string{
		"communication", "teamwork", "collaboration", "problem-solving", "critical thinking",
		"leadership", "management", "analytical", "creativity", "innovation",
		"time management", "organization", "attention to detail", "adaptability",
		"flexibility", "initiative", "self-motivated", "customer service", "presentation",
		"negotiation", "conflict resolution", "decision making", "strategic thinking",
	}},
	{Name: "healthcare", Skills: []string{
		"healthcare", "medical", "clinical", "patient care", "hipaa", "ehr", "emr",
		"medical devices", "pharmaceutical", "biotech", "clinical trials", "fda",
	}},
	{Name: "education", Skills: []string{
		"teaching", "curriculum development", "instructional design", "e-learning",
		"lms", "educational technology", "assessment", "pedagogy",
	}},
}

// Every inferred skill below must be a member of the categorized vocabulary;
// New enforces this at startup.
var defaultConcepts = map[string][]string{
	// Job titles and roles.
	"software developer":        {"python", "java", "javascript", "git", "sql"},
	"software engineer":         {"python", "java", "c++", "git"},
	"full stack developer":      {"javascript", "react", "node.js", "sql", "html", "css"},
	"frontend developer":        {"javascript", "react", "vue", "angular", "html", "css"},
	"backend developer":         {"python", "java", "node.js", "sql", "microservices", "database design"},
	"data scientist":            {"python", "machine learning", "pandas", "numpy", "sql", "statistics", "tensorflow"},
	"data analyst":              {"sql", "python", "tableau", "power bi", "excel", "data analysis", "reporting"},
	"data engineer":             {"python", "sql", "etl", "data warehousing"},
	"devops engineer":           {"docker", "kubernetes", "jenkins", "terraform", "aws", "ci/cd"},
	"cloud engineer":            {"aws", "azure", "terraform", "docker", "kubernetes", "cloud architecture"},
	"machine learning engineer": {"python", "tensorflow", "pytorch", "machine learning", "deep learning"},
	"mobile developer":          {"swift", "kotlin", "react native", "flutter", "ios", "android"},
	"qa engineer":               {"selenium", "qa", "test automation", "unit testing"},
	"security engineer":         {"cybersecurity", "penetration testing", "firewall", "encryption", "vulnerability assessment"},
	"business analyst":          {"business analysis", "stakeholder management", "process improvement"},
	"project manager":           {"project management", "agile", "scrum", "jira", "stakeholder management"},
	"product manager":           {"product management", "roadmap", "user stories", "market research"},

	// General concepts.
	"web development":         {"html", "css", "javascript", "react"},
	"programming":             {"python", "java", "c++", "git"},
	"database":                {"sql", "database design", "postgresql", "mysql", "mongodb"},
	"automation":              {"python", "selenium", "jenkins"},
	"analytics":               {"data analysis", "statistics", "reporting", "excel"},
	"infrastructure":          {"docker", "kubernetes", "terraform"},
	"artificial intelligence": {"machine learning", "deep learning", "neural networks", "nlp", "computer vision"},
}

var defaultDomains = []Domain{
	{
		Name:      "Tech",
		Primary:   []string{"software", "developer", "engineer", "programming", "coding", "technical"},
		Secondary: []string{"python", "java", "javascript", "sql", "api", "cloud", "data"},
	},
	{
		Name:      "Data",
		Primary:   []string{"data", "analytics", "analysis", "machine learning", "ai", "statistics"},
		Secondary: []string{"pandas", "numpy", "tableau", "power bi", "etl", "visualization"},
	},
	{
		Name:      "Business",
		Primary:   []string{"business", "management", "strategy", "consulting", "analyst"},
		Secondary: []string{"finance", "marketing", "operations", "supply chain", "project management"},
	},
	{
		Name:      "Engineering",
		Primary:   []string{"engineering", "mechanical", "electrical", "civil", "chemical"},
		Secondary: []string{"autocad", "solidworks", "matlab", "design", "manufacturing"},
	},
	{
		Name:      "Security",
		Primary:   []string{"security", "cybersecurity", "information security"},
		Secondary: []string{"penetration testing", "vulnerability", "firewall", "compliance"},
	},
	{
		Name:      "Legal",
		Primary:   []string{"law", "legal", "attorney", "lawyer", "paralegal"},
		Secondary: []string{"litigation", "contracts", "compliance", "regulatory"},
	},
	{
		Name:      "Healthcare",
		Primary:   []string{"healthcare", "medical", "clinical", "health"},
		Secondary: []string{"patient", "hospital", "pharmaceutical", "biotech"},
	},
}
