package catalog

import "naijapath/internal/domain"

// careers is the bundled career catalog. The first industry tag of each
// entry is its primary industry for diversification.
var careers = []domain.Career{
	{
		ID:          "software_developer",
		Title:       "Software Developer",
		Description: "Design, develop, and maintain software applications and systems. Work with programming languages, frameworks, and tools to create digital solutions.",
		RequiredSkills: []string{
			"Programming", "Problem-solving", "Logical thinking", "Attention to detail", "Continuous learning",
		},
		EducationRequirements: []string{
			"Computer Science degree", "Coding bootcamp", "Self-taught with portfolio", "Technical certifications",
		},
		SalaryRange:     domain.SalaryRange{Min: 2_500_000, Max: 15_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Office-based", "Remote work", "Collaborative teams", "Tech-focused"},
		PersonalityFit:  []string{"Analytical", "Detail-oriented", "Independent worker", "Problem solver"},
		IndustryTags:    []string{"Technology", "Software", "Digital", "Innovation"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Fintech companies", "E-commerce platforms", "Banking sector", "Startups"},
			AverageSalary:      "₦4.5M - ₦12M annually",
		},
	},
	{
		ID:          "data_scientist",
		Title:       "Data Scientist",
		Description: "Analyze complex data to extract insights and drive business decisions. Use statistical methods, machine learning, and data visualization.",
		RequiredSkills: []string{
			"Statistical analysis", "Programming (Python/R)", "Data visualization", "Machine learning", "Business acumen",
		},
		EducationRequirements: []string{
			"Statistics/Mathematics degree", "Data science certification", "Computer Science background", "Analytics training",
		},
		SalaryRange:     domain.SalaryRange{Min: 3_000_000, Max: 18_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Office-based", "Remote work", "Cross-functional teams", "Data-driven culture"},
		PersonalityFit:  []string{"Analytical", "Curious", "Detail-oriented", "Strategic thinker"},
		IndustryTags:    []string{"Analytics", "Technology", "Business Intelligence", "AI/ML"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Banks", "Telecoms", "E-commerce", "Consulting firms"},
			AverageSalary:      "₦5M - ₦15M annually",
		},
	},
	{
		ID:          "digital_marketer",
		Title:       "Digital Marketing Specialist",
		Description: "Develop and execute online marketing strategies across digital channels. Manage social media, content, SEO, and digital advertising campaigns.",
		RequiredSkills: []string{
			"Content creation", "Social media management", "Analytics", "SEO/SEM", "Creative thinking",
		},
		EducationRequirements: []string{
			"Marketing degree", "Digital marketing certification", "Communications background", "Self-taught with portfolio",
		},
		SalaryRange:     domain.SalaryRange{Min: 1_500_000, Max: 8_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Creative workspace", "Client-facing", "Fast-paced", "Digital-first"},
		PersonalityFit:  []string{"Creative", "Communicative", "Adaptable", "Results-oriented"},
		IndustryTags:    []string{"Marketing", "Digital", "Creative", "Communications"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Advertising agencies", "E-commerce companies", "Media houses", "Freelance"},
			AverageSalary:      "₦2.5M - ₦6M annually",
		},
	},
	{
		ID:          "product_manager",
		Title:       "Product Manager",
		Description: "Lead product development from conception to launch. Work with cross-functional teams to define product strategy and ensure successful delivery.",
		RequiredSkills: []string{
			"Strategic thinking", "Project management", "Communication", "Market analysis", "Leadership",
		},
		EducationRequirements: []string{
			"Business degree", "Product management certification", "Technical background", "MBA preferred",
		},
		SalaryRange:     domain.SalaryRange{Min: 4_000_000, Max: 20_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Collaborative", "Cross-functional teams", "Strategic planning", "Customer-focused"},
		PersonalityFit:  []string{"Strategic", "Leadership-oriented", "Communicative", "Analytical"},
		IndustryTags:    []string{"Product", "Strategy", "Technology", "Business"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Tech companies", "Fintech", "E-commerce", "Consulting"},
			AverageSalary:      "₦6M - ₦15M annually",
		},
	},
	{
		ID:          "ux_designer",
		Title:       "UX/UI Designer",
		Description: "Design user experiences and interfaces for digital products. Research user needs and create intuitive, visually appealing designs.",
		RequiredSkills: []string{
			"Design thinking", "User research", "Prototyping", "Visual design", "Empathy",
		},
		EducationRequirements: []string{
			"Design degree", "UX certification", "Portfolio-based", "Self-taught with strong portfolio",
		},
		SalaryRange:     domain.SalaryRange{Min: 2_000_000, Max: 12_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Creative studio", "Collaborative", "User-focused", "Design-thinking culture"},
		PersonalityFit:  []string{"Creative", "Empathetic", "Detail-oriented", "User-focused"},
		IndustryTags:    []string{"Design", "Technology", "User Experience", "Creative"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Tech startups", "Design agencies", "Banks", "E-commerce"},
			AverageSalary:      "₦3M - ₦8M annually",
		},
	},
	{
		ID:          "business_analyst",
		Title:       "Business Analyst",
		Description: "Analyze business processes and requirements to improve efficiency and drive growth. Bridge the gap between business needs and technical solutions.",
		RequiredSkills: []string{
			"Analytical thinking", "Process mapping", "Requirements gathering", "Communication", "Problem-solving",
		},
		EducationRequirements: []string{
			"Business degree", "Analytics certification", "Economics background", "MBA preferred",
		},
		SalaryRange:     domain.SalaryRange{Min: 2_500_000, Max: 10_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthGood,
		WorkEnvironment: []string{"Office-based", "Cross-functional teams", "Process-focused", "Data-driven"},
		PersonalityFit:  []string{"Analytical", "Detail-oriented", "Communicative", "Process-oriented"},
		IndustryTags:    []string{"Business", "Analytics", "Process Improvement", "Strategy"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandMedium,
			LocalOpportunities: []string{"Banks", "Consulting firms", "Telecoms", "Government"},
			AverageSalary:      "₦3.5M - ₦8M annually",
		},
	},
	{
		ID:          "cybersecurity_specialist",
		Title:       "Cybersecurity Specialist",
		Description: "Protect organizations from cyber threats by implementing security measures, monitoring systems, and responding to incidents.",
		RequiredSkills: []string{
			"Security frameworks", "Risk assessment", "Incident response", "Technical expertise", "Attention to detail",
		},
		EducationRequirements: []string{
			"Cybersecurity degree", "Security certifications", "IT background", "Specialized training",
		},
		SalaryRange:     domain.SalaryRange{Min: 3_500_000, Max: 16_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthExcellent,
		WorkEnvironment: []string{"Secure facilities", "High-pressure situations", "Technical focus", "24/7 monitoring"},
		PersonalityFit:  []string{"Detail-oriented", "Analytical", "Security-minded", "Problem solver"},
		IndustryTags:    []string{"Cybersecurity", "Technology", "Risk Management", "IT"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandHigh,
			LocalOpportunities: []string{"Banks", "Government", "Telecoms", "Consulting"},
			AverageSalary:      "₦5M - ₦12M annually",
		},
	},
	{
		ID:          "content_creator",
		Title:       "Content Creator/Influencer",
		Description: "Create engaging content across digital platforms to build audiences and drive engagement. Develop brand partnerships and monetize content.",
		RequiredSkills: []string{
			"Content creation", "Social media expertise", "Video/photo editing", "Brand building", "Audience engagement",
		},
		EducationRequirements: []string{
			"Communications degree", "Self-taught", "Media studies", "Portfolio-based",
		},
		SalaryRange:     domain.SalaryRange{Min: 1_000_000, Max: 10_000_000, Currency: "NGN"},
		GrowthOutlook:   domain.GrowthGood,
		WorkEnvironment: []string{"Home studio", "Flexible schedule", "Creative freedom", "Social media focused"},
		PersonalityFit:  []string{"Creative", "Outgoing", "Adaptable", "Self-motivated"},
		IndustryTags:    []string{"Content", "Social Media", "Creative", "Digital Marketing"},
		MarketContext: domain.MarketContext{
			Demand:             domain.DemandMedium,
			LocalOpportunities: []string{"Social media platforms", "Brand partnerships", "Media companies", "Freelance"},
			AverageSalary:      "₦1.5M - ₦6M annually",
		},
	},
}
