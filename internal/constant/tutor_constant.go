package constant

const (
	MessageSenderUser = "user"
	MessageSenderAI   = "ai"

	// PlaceholderSessionTitle is the default title before auto-derivation from
	// the first user message kicks in.
	PlaceholderSessionTitle = "Yeni Konuşma"

	// SessionTitleRuneLimit is how much of the first user message becomes the
	// title; longer texts get TitleEllipsis appended.
	SessionTitleRuneLimit = 30
	TitleEllipsis         = "..."
)

// Reply templates. %q wraps the learner's own words in quotes, mirroring the
// original scripted responder.
const (
	WelcomeMessageTemplate = "Merhaba %s! Ben %s, senin %s öğretmeninim. 🎤 Mikrofona basarak konuşmaya başla!"

	TextReplyTemplate  = "%q - %s Telaffuzun çok iyi. Devam edelim!"
	VoiceReplyTemplate = "%q - Mükemmel! Telaffuzun çok iyi. Devam edelim!"

	TextReplyTranslation = "Great! Your pronunciation is very good. Let's continue!"
)

// Encouragements rotated across the exchanges of one session.
var Encouragements = []string{"Harika!", "Mükemmel!"}

type Language struct {
	Id   string
	Name string
	Flag string
}

type TeacherPersona struct {
	Id     string
	Name   string
	Gender string
	Avatar string
	Sample string
}

type LearningGoal struct {
	Id          string
	Name        string
	Icon        string
	Description string
}

type Level struct {
	Id          string
	Name        string
	Icon        string
	Description string
}

// Wizard catalog. Fixed data, same set the onboarding wizard offers.
var (
	Languages = []Language{
		{Id: "turkish", Name: "Türkçe", Flag: "🇹🇷"},
		{Id: "english", Name: "İngilizce", Flag: "🇬🇧"},
		{Id: "german", Name: "Almanca", Flag: "🇩🇪"},
		{Id: "french", Name: "Fransızca", Flag: "🇫🇷"},
		{Id: "spanish", Name: "İspanyolca", Flag: "🇪🇸"},
		{Id: "italian", Name: "İtalyanca", Flag: "🇮🇹"},
	}

	Teachers = []TeacherPersona{
		{Id: "ayse", Name: "Ayşe", Gender: "Kadın", Avatar: "👩", Sample: "Merhaba, ben Ayşe. Seninle Türkçe öğrenmek için çok heyecanlıyım!"},
		{Id: "mehmet", Name: "Mehmet", Gender: "Erkek", Avatar: "👨", Sample: "Selam, ben Mehmet. Birlikte harika bir öğrenme yolculuğuna çıkacağız!"},
		{Id: "zeynep", Name: "Zeynep", Gender: "Kadın", Avatar: "👩‍🏫", Sample: "Merhaba, ben Zeynep. Konuşarak öğrenmek çok eğlenceli olacak!"},
		{Id: "ahmet", Name: "Ahmet", Gender: "Erkek", Avatar: "👨‍🏫", Sample: "Merhaba, ben Ahmet. Sakin ve etkili bir şekilde öğreteceğim."},
	}

	LearningGoals = []LearningGoal{
		{Id: "travel", Name: "Seyahat", Icon: "✈️", Description: "Türkiye'de tatil yapmak istiyorum"},
		{Id: "work", Name: "İş", Icon: "💼", Description: "Türkiye'de çalışmak istiyorum"},
		{Id: "study", Name: "Eğitim", Icon: "🎓", Description: "Türkiye'de okumak istiyorum"},
		{Id: "culture", Name: "Kültür", Icon: "🎭", Description: "Türk kültürünü öğrenmek istiyorum"},
		{Id: "family", Name: "Aile", Icon: "👨‍👩‍👧", Description: "Ailemle konuşmak istiyorum"},
		{Id: "general", Name: "Genel", Icon: "🌍", Description: "Genel olarak Türkçe bilmek istiyorum"},
	}

	Levels = []Level{
		{Id: "beginner", Name: "Başlangıç", Icon: "🌱", Description: "Hiç Türkçe bilmiyorum"},
		{Id: "elementary", Name: "Temel", Icon: "📚", Description: "Basit cümleler kurabiliyorum"},
		{Id: "intermediate", Name: "Orta", Icon: "💬", Description: "Günlük konuşmalar yapabiliyorum"},
		{Id: "advanced", Name: "İleri", Icon: "🎓", Description: "Akıcı konuşabiliyorum"},
	}
)

// FindLanguage returns the catalog entry for id, or nil.
func FindLanguage(id string) *Language {
	for i := range Languages {
		if Languages[i].Id == id {
			return &Languages[i]
		}
	}
	return nil
}

// FindTeacher returns the persona for id, or nil.
func FindTeacher(id string) *TeacherPersona {
	for i := range Teachers {
		if Teachers[i].Id == id {
			return &Teachers[i]
		}
	}
	return nil
}
