package chatbot

// Keyword lists drive the pre-LLM safety and topic filters. Matching is
// case-insensitive substring containment, so multi-word phrases stay intact.

var emergencyKeywords = []string{
	"severe pain", "heavy bleeding", "can't breathe", "chest pain",
	"unconscious", "seizure", "extremely dizzy", "fainted",
	"severe headache", "vision loss", "severe abdominal pain",
	"sudden swelling", "severe vomiting", "can't stop bleeding",
	"suicidal", "want to die", "kill myself", "end my life",
}

var unsafeKeywords = []string{
	"perform surgery", "diy surgery", "home surgery",
	"abortion at home", "self-induce", "coat hanger",
	"terminate pregnancy myself", "dangerous pills",
}

var healthRelatedKeywords = []string{
	// menstrual cycle
	"period", "menstruation", "menstrual", "cycle", "pms", "pmdd",
	"cramps", "cramping", "bleeding", "spotting", "flow",
	// reproductive health
	"ovulation", "fertility", "conception", "pregnancy", "contraception",
	"birth control", "iud", "pill", "condom", "reproductive",
	// symptoms
	"pain", "discharge", "infection", "yeast", "uti", "std", "sti",
	"endometriosis", "pcos", "fibroids", "cyst",
	// hormones
	"hormone", "estrogen", "progesterone", "testosterone",
	// hygiene
	"tampon", "pad", "menstrual cup", "hygiene",
	// pregnancy related
	"trimester", "fetus", "baby", "labor", "delivery", "breastfeeding",
	"postpartum", "miscarriage", "abortion",
}

var offTopicKeywords = []string{
	// technology
	"computer", "laptop", "software", "programming", "code", "python",
	"javascript", "app development", "website", "algorithm",
	// sports
	"football", "basketball", "cricket", "soccer", "tennis",
	// entertainment
	"movie", "tv show", "celebrity", "actor", "music", "song",
	// food
	"recipe", "cooking", "restaurant", "pizza", "burger",
	// general
	"weather", "politics", "election", "stock market", "cryptocurrency",
}

const systemPrompt = `You are a compassionate and knowledgeable reproductive health education assistant. Your role is to provide accurate, evidence-based information about reproductive health, menstrual cycles, pregnancy, and related topics.

CRITICAL RULES:
1. NEVER provide specific medical diagnoses
2. NEVER prescribe medications or treatments
3. ALWAYS recommend consulting a healthcare provider for medical concerns
4. Be supportive and non-judgmental
5. Use clear, accessible language
6. Provide only general educational information about reproductive health
7. ONLY answer questions related to reproductive health, menstrual cycles, pregnancy, fertility, and women's health
8. REFUSE to answer questions about unrelated topics like technology, sports, entertainment, food recipes, etc.

TOPICS YOU CAN DISCUSS:
- Menstrual cycle education (phases, normal variations)
- Common menstrual symptoms and general management
- Reproductive anatomy and physiology
- Pregnancy basics and prenatal care
- Fertility awareness and conception
- Contraception methods (general information)
- Common reproductive health conditions (educational overview)
- Menstrual hygiene products
- Puberty and hormonal changes
- Menopause and perimenopause

TOPICS YOU CANNOT DISCUSS:
- Technology, programming, software
- Sports, games, entertainment
- Food recipes, cooking
- Politics, current events
- General knowledge questions
- Any topic unrelated to reproductive health

RESPONSE FORMAT:
- Provide clear, factual information
- Use bullet points for clarity when appropriate
- Acknowledge limitations of general advice
- Always include a disclaimer: "This is general educational information. For personalized medical advice, please consult a qualified healthcare provider."

Remember: You are an educational resource, not a replacement for medical professionals.`

const emergencyResponse = `🚨 **URGENT: Your message indicates a potentially serious medical situation.**

Please seek immediate medical attention:
- Call emergency services (911 in US, 112 in EU, or your local emergency number)
- Go to the nearest emergency room
- Contact your doctor immediately

Your health and safety are the top priority. Medical professionals can provide the urgent care you need.`

const unsafeResponse = `I cannot provide information on this topic as it could be harmful to your health and safety.

If you're experiencing a crisis or having thoughts of self-harm:
- **Crisis Hotline:** 988 (Suicide & Crisis Lifeline - US)
- **International:** https://findahelpline.com

For reproductive health concerns, please speak with:
- A licensed healthcare provider
- Planned Parenthood or similar clinics
- A trusted counselor or therapist

Your wellbeing matters, and there are professionals ready to help you safely.`

const offTopicResponse = `I'm a specialized reproductive health education assistant. I can only answer questions related to:

• Menstrual cycles and periods
• Pregnancy and fertility
• Reproductive health and anatomy
• Contraception and family planning
• Women's health topics

Your question appears to be about a different topic. Please ask me about reproductive health, and I'll be happy to help! 😊`

const disclaimerNote = "\n\n⚠️ Remember: This is educational information only, not a diagnosis or prescription. Always consult a healthcare provider for personalized medical advice."
