package classify

// Category maps a canonical role name to the keyword phrases that identify it.
type Category struct {
	Role     string
	Keywords []string
}

// DefaultTaxonomy returns the ordered role taxonomy. Order is load-bearing:
// the classifier returns on the first category with any keyword match, so
// specific roles (AI/ML, data) must precede the generic Software Engineer
// catch-all or every "AI/ML Engineer" title would classify as generic.
func DefaultTaxonomy() []Category {
	return []Category{
		// AI & ML — most specific, checked first.
		{"AI Engineer", []string{
			"ai/ml engineer", "ai ml engineer", "ai / ml", "ai/ml", "ai & ml",
			"ai engineer", "ai software engineer", "ai developer", "ai software developer",
			"ai programmer", "artificial intelligence engineer",
			"generative ai", "genai engineer", "gen ai", "generative ai engineer",
			"ai platform engineer", "ai devops", "ai infrastructure",
			"artificial intelligence",
		}},
		{"Machine Learning Engineer", []string{
			"machine learning engineer", "ml engineer", "machine learning developer", "ml developer",
			"mlops engineer", "mlops", "deep learning engineer", "ml software engineer",
		}},
		{"NLP Engineer", []string{
			"nlp engineer", "natural language processing", "conversational ai",
			"prompt engineer", "llm engineer", "large language model",
		}},
		{"Research Scientist", []string{
			"research scientist", "computer scientist", "applied scientist",
			"research fellow", "computational science", "research assistant",
		}},

		// Data & analytics.
		{"Data Scientist", []string{"data scientist", "data science", "applied scientist", "spatial data scientist"}},
		{"Data Engineer", []string{"data engineer", "big data", "etl developer", "azure data engineer", "data pipeline"}},
		{"Data Analyst", []string{"data analyst", "reporting analyst", "insights analyst", "commercial analyst"}},
		{"Business Intelligence Analyst", []string{"business intelligence", "bi analyst", "bi developer", "power bi", "tableau", "analytics"}},
		{"Data Architect", []string{"data architect", "data modeler", "database architect"}},
		{"Database Administrator", []string{"database administrator", "database developer", "sql developer", "dba"}},

		// Software development.
		{"Frontend Developer", []string{
			"frontend developer", "front-end developer", "front end developer",
			"ui developer", "ui engineer", "user interface developer",
			"react developer", "angular developer", "vue developer", "vue.js developer",
			"javascript developer", "typescript developer",
			"html/css developer", "web ui developer",
		}},
		{"Backend Developer", []string{
			"backend developer", "back-end developer", "back end developer",
			"server-side developer", "api developer", "microservices developer",
			"node.js developer", "python developer", "java developer",
			"c# developer", ".net developer", "go developer", "golang developer",
			"ruby developer", "php backend developer",
		}},
		{"Full Stack Developer", []string{
			"full stack", "fullstack", "full-stack developer",
			"javascript full stack", "typescript full stack",
			"mern stack", "mean stack", "lamp stack",
		}},
		{"Mobile Developer", []string{
			"mobile developer", "ios developer", "android developer",
			"react native", "mobile app developer", "flutter developer",
			"swift developer", "kotlin developer", "mobile engineer",
		}},
		{"Web Developer", []string{
			"web developer", "website developer", "web application developer",
			"php developer", "wordpress developer", "drupal developer",
			"website designer",
		}},
		{"Game Developer", []string{
			"game developer", "game software engineer", "unity developer",
			"game engineer", "unreal developer", "game programmer",
			"gameplay programmer",
		}},
		{"Embedded Systems Engineer", []string{
			"embedded systems", "firmware engineer", "embedded software",
			"embedded engineer", "iot developer", "iot engineer",
		}},

		// Infrastructure, cloud & DevOps.
		{"DevOps Engineer", []string{
			"devops engineer", "site reliability engineer", "sre",
			"ci/cd engineer", "devsecops", "devops specialist",
			"build engineer", "release engineer",
		}},
		{"Cloud Engineer", []string{
			"cloud engineer", "azure engineer", "aws engineer",
			"cloud architect", "solutions engineer", "gcp engineer",
			"cloud infrastructure engineer", "cloud solutions architect",
		}},
		{"Platform Engineer", []string{
			"platform engineer", "infrastructure engineer", "systems engineer",
			"infrastructure architect",
		}},
		{"Systems Administrator", []string{
			"systems administrator", "it support", "application support",
			"service desk", "sysadmin", "system administrator",
			"it administrator", "network administrator",
		}},
		{"Network Engineer", []string{
			"network engineer", "network architect", "network administrator",
			"network security engineer", "cisco engineer", "lan/wan engineer",
		}},

		// Security.
		{"Cyber Security Engineer", []string{
			"cyber security", "security analyst", "infosec",
			"detection engineer", "security engineer", "cybersecurity",
			"information security", "security consultant", "penetration tester",
			"ethical hacker", "security operations",
		}},

		// QA & testing.
		{"QA Engineer", []string{
			"qa engineer", "quality assurance engineer", "quality engineer",
			"software tester", "manual tester", "functional tester",
		}},
		{"Test Automation Engineer", []string{
			"test automation engineer", "automation engineer", "automation tester",
			"test automation", "selenium engineer", "automation qa",
			"sdet", "software development engineer in test",
			"automated testing engineer",
		}},
		{"Performance Test Engineer", []string{
			"performance test engineer", "performance tester",
			"load test engineer", "jmeter engineer",
		}},

		// Specialized engineering.
		{"Blockchain Developer", []string{
			"blockchain developer", "blockchain engineer", "web3 developer",
			"smart contract developer", "solidity developer", "cryptocurrency developer",
		}},
		{"Computer Vision Engineer", []string{
			"computer vision engineer", "computer vision", "image processing engineer",
			"opencv developer", "vision ai",
		}},
		{"Robotics Engineer", []string{
			"robotics engineer", "robotics developer", "automation robotics",
			"ros developer", "robotic systems engineer",
		}},
		{"Graphics Engineer", []string{
			"graphics engineer", "graphics programmer", "rendering engineer",
			"opengl developer", "directx developer", "shader programmer",
		}},

		// Design & UX.
		{"UX/UI Designer", []string{
			"ux designer", "ui designer", "ux/ui designer", "user experience designer",
			"product designer", "interaction designer", "visual designer",
			"user interface designer",
		}},
		{"UX Researcher", []string{
			"ux researcher", "user researcher", "ux analyst",
			"usability researcher", "user experience researcher",
		}},

		// Generic software engineering — catch-all, deliberately late.
		{"Software Engineer", []string{
			"software engineer", "programmer",
			"application engineer", "app engineer",
			"software development engineer",
		}},
		{"Software Developer", []string{
			"software developer", "developer",
		}},

		// Management & strategy.
		{"Engineering Manager", []string{
			"engineering manager", "head of engineering", "development manager",
			"team lead", "cto", "chief technology officer", "vp engineering",
			"director of engineering",
		}},
		{"Product Manager", []string{
			"product manager", "product owner", "digital product manager",
			"technical product manager", "product lead",
		}},
		{"Project Manager", []string{
			"project manager", "technical project manager", "it project manager",
			"scrum master", "agile coach", "delivery manager",
		}},
		{"Business Analyst", []string{
			"business analyst", "technical business analyst", "process analyst",
			"systems analyst", "requirements analyst",
		}},
		{"Solutions Architect", []string{
			"solutions architect", "enterprise architect", "technical architect",
			"solution architect", "software architect", "system architect",
		}},

		// Specialized / niche.
		{"Quantitative Analyst", []string{
			"quantitative analyst", "quant", "actuary", "algorithmic trader",
			"quantitative developer", "quant developer",
		}},
		{"GIS Analyst", []string{
			"gis analyst", "gis", "spatial analyst", "geospatial",
			"gis developer", "geospatial analyst",
		}},

		// Executive & leadership.
		{"Executive Leadership", []string{
			"head of", "director of", "chief", "partner",
			"vp", "vice president", "executive", "c-level",
		}},
		{"Data Leadership", []string{
			"head of data", "manager data", "data manager",
			"data lead", "master data", "mdm",
		}},
		{"Technical Lead", []string{
			"tech lead", "technical lead", "lead developer",
			"delivery lead", "initiative lead", "architecture lead",
		}},

		// Academic & education.
		{"Lecturer", []string{
			"lecturer", "professor", "phd", "research fellow",
			"faculty", "teaching staff", "academic", "tutor",
			"instructor", "educator",
		}},

		// Health & clinical informatics.
		{"Health Informatics", []string{
			"clinical coder", "clinical data", "emr", "casemix",
			"health data", "medical coder", "cognitive rater",
			"health informatics", "clinical informatics",
		}},

		// Data governance, compliance & strategy.
		{"Data Governance & Compliance", []string{
			"data governance", "data protection", "data integrity",
			"privacy", "compliance", "audit", "risk", "policy",
			"data quality", "data steward",
		}},
		{"Strategy & Transformation", []string{
			"digital transformation", "strategy", "roadmap",
			"change manager", "business development",
			"transformation lead", "innovation manager",
		}},

		// Consulting & implementation.
		{"Technical Consultant", []string{
			"consultant", "advisor", "implementation specialist",
			"integration specialist", "solution specialist",
			"technical advisor", "it consultant",
		}},
		{"Graduate Program", []string{
			"graduate", "cadet", "intern", "trainee",
			"early career", "digital futures", "graduate program",
		}},

		// Niche / other tech.
		{"SEO & Digital Marketing", []string{
			"seo", "search engine optimization", "digital marketing",
			"marketing technology", "martech", "growth hacker",
			"digital strategist",
		}},
		{"Intelligence & Security", []string{
			"intelligence officer", "tspv", "security clearance",
			"defense", "intelligence analyst",
		}},
	}
}
