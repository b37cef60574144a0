package assistant

const (
	introReply = "Perfect! I'll help you create a professional resume. I'm going to ask you detailed questions " +
		"to build a comprehensive profile. This ensures your resume stands out and passes ATS " +
		"(Applicant Tracking System) screening.\n\n"

	ackReply = "Great! I've noted that information.\n\n"

	invalidReplyFormat = "Hmm, %s.\n\n%s"

	closingReply = "Excellent! I have all the information I need. Let me now generate your professional resume " +
		"with ATS optimization, industry-specific keywords, and achievement-focused content. " +
		"This will take just a moment..."

	coverLetterReply = "I'll help you create a compelling cover letter. First, let me know:\n\n" +
		"1. What specific job are you applying for?\n" +
		"2. What company is this for?\n" +
		"3. Do you have the job description? (This helps me tailor the content)\n" +
		"4. What are your top 3 achievements you want to highlight?"

	optimizeReply = "I can help optimize your resume for better ATS compatibility and impact. Please tell me:\n\n" +
		"1. What industry are you targeting?\n" +
		"2. What specific areas do you want to improve? (e.g., work experience descriptions, skills section, formatting)\n" +
		"3. Are you applying for a specific role or company?"

	clarifyReply = "I understand! Let me help you with that. Could you provide a bit more detail about what " +
		"you're looking for? For example:\n\n" +
		"• Are you creating a new resume or updating an existing one?\n" +
		"• What's your target role or industry?\n" +
		"• What's your experience level?\n\n" +
		"The more specific you are, the better I can assist you!"

	readyReply = "Your resume is ready. Reset the session to start over."

	readyMessageFormat = "Your resume is ready! Completeness score: %d/100 (%s)."
)
