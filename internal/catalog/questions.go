package catalog

import "naijapath/internal/domain"

// questions is the bundled quiz, ordered the way the wizard presents it.
var questions = []domain.Question{
	{
		ID:            "interests_activities",
		Text:          "Which activities energize you the most?",
		Description:   "Select up to 3 activities that you find most engaging and fulfilling",
		Category:      domain.CategoryInterests,
		Weight:        1.0,
		AnswerType:    domain.AnswerMultiSelect,
		MaxSelections: 3,
		Options: []string{
			"Analyzing data and finding patterns",
			"Creating visual designs or artwork",
			"Building or fixing things with my hands",
			"Teaching or mentoring others",
			"Writing or storytelling",
			"Solving complex technical problems",
			"Leading teams and projects",
			"Helping people with their problems",
			"Researching and discovering new information",
			"Performing or entertaining others",
		},
	},
	{
		ID:         "interests_subjects",
		Text:       "Which subjects or topics fascinate you most?",
		Category:   domain.CategoryInterests,
		Weight:     0.9,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Technology and innovation",
			"Human behavior and psychology",
			"Business and economics",
			"Science and research",
			"Arts and creative expression",
			"Health and medicine",
			"Education and development",
			"Environment and sustainability",
			"Law and justice",
			"Media and communications",
		},
	},
	{
		ID:         "interests_learning",
		Text:       "How do you prefer to learn new skills?",
		Category:   domain.CategoryInterests,
		Weight:     0.7,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Hands-on practice and experimentation",
			"Reading books and research papers",
			"Watching tutorials and demonstrations",
			"Learning from mentors and experts",
			"Group discussions and collaboration",
			"Online courses and structured programs",
			"Trial and error with real projects",
			"Attending workshops and seminars",
		},
	},
	{
		ID:         "values_motivation",
		Text:       "What motivates you most in your ideal career?",
		Category:   domain.CategoryValues,
		Weight:     1.0,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Making a positive impact on society",
			"Achieving financial security and wealth",
			"Having creative freedom and autonomy",
			"Gaining recognition and status",
			"Continuous learning and growth",
			"Work-life balance and flexibility",
			"Building meaningful relationships",
			"Solving challenging problems",
			"Leading and inspiring others",
			"Contributing to innovation and progress",
		},
	},
	{
		ID:         "values_success",
		Text:       "How do you define career success?",
		Category:   domain.CategoryValues,
		Weight:     0.9,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Reaching the top of my field",
			"Having a stable, secure job",
			"Making a difference in people's lives",
			"Earning a high salary",
			"Being my own boss",
			"Achieving work-life balance",
			"Being recognized as an expert",
			"Creating something lasting and meaningful",
			"Having diverse and interesting experiences",
			"Building a strong professional network",
		},
	},
	{
		ID:          "values_priorities",
		Text:        "Rate the importance of these factors in your career (1-5 scale)",
		Description: "1 = Not important, 5 = Extremely important",
		Category:    domain.CategoryValues,
		Weight:      0.8,
		AnswerType:  domain.AnswerRating,
		Options: []string{
			"Job Security",
			"High Salary",
			"Creative Expression",
			"Social Impact",
			"Career Growth",
		},
	},
	{
		ID:         "environment_setting",
		Text:       "In which work environment do you thrive best?",
		Category:   domain.CategoryWorkEnvironment,
		Weight:     0.8,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Quiet office with minimal distractions",
			"Collaborative open workspace",
			"Remote/home office setup",
			"Dynamic, fast-paced environment",
			"Outdoor or field-based work",
			"Laboratory or technical facility",
			"Creative studio or workshop",
			"Client-facing or public spaces",
			"Travel-based or multiple locations",
			"Structured, organized workplace",
		},
	},
	{
		ID:         "environment_interaction",
		Text:       "How much social interaction do you prefer at work?",
		Category:   domain.CategoryWorkEnvironment,
		Weight:     0.7,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Minimal - I prefer working independently",
			"Small team - Close collaboration with 2-5 people",
			"Medium group - Regular interaction with 6-15 people",
			"Large team - Working with many colleagues daily",
			"Public-facing - Constant interaction with clients/customers",
			"Mixed - Balance of solo work and team collaboration",
			"Leadership role - Managing and directing others",
			"Networking-focused - Building relationships across organizations",
		},
	},
	{
		ID:         "environment_schedule",
		Text:       "What work schedule appeals to you most?",
		Category:   domain.CategoryWorkEnvironment,
		Weight:     0.6,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Traditional 9-5 weekdays",
			"Flexible hours with core meeting times",
			"Project-based with deadline-driven intensity",
			"Shift work with rotating schedules",
			"Seasonal work with busy/slow periods",
			"Freelance with complete schedule control",
			"International schedule with global clients",
			"Part-time or reduced hours for work-life balance",
		},
	},
	{
		ID:            "skills_strengths",
		Text:          "Which of these best describes your natural strengths?",
		Description:   "Select up to 2 areas where you excel naturally",
		Category:      domain.CategorySkills,
		Weight:        1.0,
		AnswerType:    domain.AnswerMultiSelect,
		MaxSelections: 2,
		Options: []string{
			"Analytical thinking and problem-solving",
			"Creative and artistic abilities",
			"Communication and interpersonal skills",
			"Technical and digital proficiency",
			"Leadership and management capabilities",
			"Attention to detail and organization",
			"Physical coordination and manual skills",
			"Mathematical and logical reasoning",
			"Emotional intelligence and empathy",
			"Innovation and entrepreneurial thinking",
		},
	},
	{
		ID:         "skills_development",
		Text:       "Which skills are you most excited to develop further?",
		Category:   domain.CategorySkills,
		Weight:     0.8,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Advanced technology and programming",
			"Public speaking and presentation",
			"Project management and organization",
			"Creative design and visual arts",
			"Data analysis and research methods",
			"Sales and negotiation techniques",
			"Teaching and training others",
			"Financial planning and analysis",
			"Writing and content creation",
			"Strategic thinking and planning",
		},
	},
	{
		ID:         "skills_challenge",
		Text:       "What type of challenges do you enjoy tackling?",
		Category:   domain.CategorySkills,
		Weight:     0.9,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Complex technical problems requiring deep analysis",
			"Creative projects with open-ended solutions",
			"People-related challenges and conflicts",
			"Strategic business decisions with high stakes",
			"Research questions with unknown answers",
			"Process improvements and optimization",
			"Crisis management and urgent situations",
			"Long-term planning and vision development",
			"Innovation and breakthrough thinking",
			"Detail-oriented tasks requiring precision",
		},
	},
	{
		ID:         "personality_workstyle",
		Text:       "Which scenario describes your ideal workday?",
		Category:   domain.CategoryPersonality,
		Weight:     0.8,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Deep focus on a complex project with minimal interruptions",
			"Multiple meetings collaborating with different teams",
			"Mix of independent work and client presentations",
			"Hands-on problem-solving with immediate results",
			"Creative brainstorming and innovative thinking",
			"Teaching or mentoring others throughout the day",
			"Analyzing data and presenting insights to leadership",
			"Managing multiple projects and coordinating resources",
			"Traveling to different locations for varied experiences",
			"Routine tasks with clear procedures and expectations",
		},
	},
	{
		ID:         "personality_decision",
		Text:       "How do you typically make important decisions?",
		Category:   domain.CategoryPersonality,
		Weight:     0.7,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"Thorough research and data analysis",
			"Consulting with trusted advisors and experts",
			"Following my intuition and gut feelings",
			"Weighing pros and cons systematically",
			"Considering impact on all stakeholders",
			"Quick decisions based on experience",
			"Collaborative discussion with team members",
			"Testing small experiments before committing",
			"Following established procedures and guidelines",
			"Seeking creative and innovative alternatives",
		},
	},
	{
		ID:         "personality_stress",
		Text:       "How do you handle work pressure and stress?",
		Category:   domain.CategoryPersonality,
		Weight:     0.6,
		AnswerType: domain.AnswerSingleChoice,
		Options: []string{
			"I thrive under pressure and perform better",
			"I prefer steady, manageable workloads",
			"I need clear deadlines and structure to focus",
			"I work best with supportive team collaboration",
			"I handle stress by breaking tasks into smaller steps",
			"I need flexibility to manage stress effectively",
			"I perform well in crisis situations",
			"I prefer to avoid high-stress environments",
			"I use creative outlets to manage work stress",
			"I rely on planning and preparation to reduce stress",
		},
	},
}
