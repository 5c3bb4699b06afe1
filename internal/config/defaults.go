package config

// Lexicons groups the three tagging vocabularies as tag -> aliases.
type Lexicons struct {
	Capabilities map[string][]string `koanf:"capabilities"`
	Roles        map[string][]string `koanf:"roles"`
	Industries   map[string][]string `koanf:"industries"`
}

// Aliases are matched as substrings of normalized text, so very short
// aliases ("ai", "ml", "ui") are avoided: they hit inside unrelated words.
// Bare words with common non-domain readings ("growth", "media", "course",
// "crypto") are replaced by phrases.
func defaultLexicons() Lexicons {
	return Lexicons{
		Capabilities: map[string][]string{
			"machine_learning": {"machine learning", "deep learning", "forecasting", "predictive model", "neural network", "computer vision", "nlp", "recommendation engine", "llm"},
			"data_analytics":   {"data analysis", "data analytics", "analytics", "dashboards", "dashboard", "business intelligence", "reporting", "data visualization", "sql"},
			"web_development":  {"web app", "website", "web development", "react", "vue", "angular", "frontend", "front end", "landing page", "next js"},
			"backend_systems":  {"backend", "back end", "rest api", "graphql", "microservice", "server side", "database", "postgres", "node js", "golang", "django"},
			"mobile":           {"mobile app", "ios app", "iphone", "android", "react native", "flutter", "swiftui", "kotlin"},
			"cloud_devops":     {"devops", "kubernetes", "docker", "amazon web services", "gcp", "azure", "ci cd", "infrastructure", "terraform", "deployment"},
			"design":           {"user experience", "user interface", "ux design", "ux research", "figma", "wireframe", "prototype", "branding", "visual design"},
			"blockchain":       {"blockchain", "smart contract", "web3", "solidity", "cryptocurrency", "crypto wallet", "crypto exchange", "nft"},
			"ecommerce":        {"ecommerce", "e commerce", "online store", "shopify", "checkout", "marketplace"},
			"growth_marketing": {"marketing", "seo", "growth marketing", "growth hacking", "social media", "content strategy", "user acquisition", "campaign"},
			"product_strategy": {"product strategy", "roadmap", "mvp", "product management", "user research", "go to market"},
			"security":         {"security", "penetration test", "authentication", "encryption", "compliance", "soc 2", "gdpr"},
			"qa_testing":       {"qa testing", "quality assurance", "test automation", "automated testing", "end to end test", "regression test"},
		},
		Roles: map[string][]string{
			"frontend_developer":   {"frontend developer", "front end developer", "frontend engineer", "react developer", "ui developer"},
			"backend_developer":    {"backend developer", "back end developer", "backend engineer", "api developer", "server engineer"},
			"fullstack_developer":  {"full stack", "fullstack"},
			"mobile_developer":     {"mobile developer", "ios developer", "android developer", "mobile engineer"},
			"data_scientist":       {"data scientist", "data analyst", "data science"},
			"ml_engineer":          {"ml engineer", "machine learning engineer", "ai engineer"},
			"devops_engineer":      {"devops", "site reliability", "platform engineer", "cloud engineer"},
			"ui_ux_designer":       {"designer", "ux designer", "ui designer", "product designer"},
			"product_manager":      {"product manager", "product owner", "project manager"},
			"qa_engineer":          {"qa engineer", "tester", "quality engineer", "test engineer"},
			"blockchain_developer": {"blockchain developer", "smart contract developer", "solidity developer", "web3 developer"},
			"marketing_specialist": {"marketer", "marketing specialist", "growth hacker", "seo specialist"},
		},
		Industries: map[string][]string{
			"fintech":     {"fintech", "banking", "payments", "payment", "finance", "lending", "insurance", "trading"},
			"healthtech":  {"healthtech", "healthcare", "health care", "medical", "clinic", "patients", "telemedicine", "wellness"},
			"edtech":      {"edtech", "education", "learning platform", "students", "online course", "course platform", "school", "tutoring"},
			"ecommerce":   {"ecommerce", "e commerce", "retail", "online store", "shopping", "marketplace"},
			"saas":        {"saas", "b2b software", "subscription software", "enterprise software"},
			"logistics":   {"logistics", "supply chain", "shipping", "delivery", "fleet", "warehouse"},
			"real_estate": {"real estate", "proptech", "property", "rental property", "mortgage"},
			"media":       {"media company", "digital media", "news media", "entertainment", "streaming", "publishing", "gaming", "music"},
			"climate":     {"climate", "cleantech", "renewable", "sustainability", "energy", "carbon"},
			"web3":        {"web3", "blockchain", "cryptocurrency", "decentralized finance", "dao"},
			"social":      {"social network", "community", "dating app", "messaging"},
		},
	}
}

func defaultBudgetCaps() map[string]float64 {
	return map[string]float64{
		"under_5000":  75,
		"5000_10000":  100,
		"10000_25000": 150,
		"25000_50000": 200,
		"50000_plus":  9999,
	}
}

func defaultExperienceScores() map[string]float64 {
	return map[string]float64{
		"0_2":     3,
		"3_5":     7,
		"6_10":    11,
		"10_plus": 15,
	}
}

func defaultAvailabilityScores() map[string]float64 {
	return map[string]float64{
		"full_time":     8,
		"part_time":     5,
		"project_based": 4,
		"limited":       2,
	}
}
