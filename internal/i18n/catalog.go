package i18n

var catalog = map[string]map[Lang]string{
	"welcome": {
		Uzbek:   "Salom! 👋\n\nMen video yuklab olish va konvertatsiya qilishim mumkin.\n\nShunchaki menga yuboring:\n- YouTube video havolasi\n- Instagram post/reels havolasi\n- Yoki shunchaki video fayl\n\nHavolani yuborgandan so'ng, siz tanlashingiz mumkin:\n⭕️ Doira video - video eslatmalar uchun\n📹 Oddiy video - oddiy yuklab olish",
		Russian: "Привет! 👋\n\nЯ могу скачивать и конвертировать видео.\n\nПросто отправь мне:\n- Ссылку на YouTube видео\n- Ссылку на Instagram пост/reels\n- Или просто видео файл\n\nПосле отправки ссылки ты сможешь выбрать:\n⭕️ Круглое видео - для видео-заметок\n📹 Обычное видео - обычное скачивание",
		English: "Hello! 👋\n\nI can download and convert videos.\n\nJust send me:\n- YouTube video link\n- Instagram post/reels link\n- Or just a video file\n\nAfter sending the link, you can choose:\n⭕️ Round video - for video notes\n📹 Regular video - regular download",
	},
	"invalidUrl": {
		Uzbek:   "Yuborish:\n- YouTube video havolasi\n- Instagram post/reels havolasi\n- Yoki shunchaki video fayl",
		Russian: "Отправьте:\n- Ссылку на YouTube видео\n- Ссылку на Instagram пост/reels\n- Или просто видео файл",
		English: "Send:\n- YouTube video link\n- Instagram post/reels link\n- Or just a video file",
	},
	"processingVideo": {
		Uzbek:   "Video qayta ishlanmoqda...",
		Russian: "Обработка видео...",
		English: "Processing video...",
	},
	"downloadingFromYouTube": {
		Uzbek:   "⏳ YouTube dan video yuklab olinmoqda...",
		Russian: "⏳ Загрузка видео с YouTube...",
		English: "⏳ Downloading video from YouTube...",
	},
	"downloadingFromInstagram": {
		Uzbek:   "⏳ Instagram dan video yuklab olinmoqda...",
		Russian: "⏳ Загрузка видео из Instagram...",
		English: "⏳ Downloading video from Instagram...",
	},
	"downloadingVideo": {
		Uzbek:   "⏳ Video yuklab olinmoqda...",
		Russian: "⏳ Загрузка видео...",
		English: "⏳ Downloading video...",
	},
	"videoNotFound": {
		Uzbek:   "❌ Video topilmadi",
		Russian: "❌ Не удалось найти видео",
		English: "❌ Video not found",
	},
	"videoTooLong": {
		Uzbek:   "Video juda uzun. Maksimal davomiyligi: 10 daqiqa",
		Russian: "Видео слишком длинное. Максимальная длительность: 10 минут",
		English: "Video is too long. Maximum duration: 10 minutes",
	},
	"videoTooLarge": {
		Uzbek:   "Video juda katta. Maksimal hajmi: 50MB",
		Russian: "Видео слишком большое. Максимальный размер: 50MB",
		English: "Video is too large. Maximum size: 50MB",
	},
	"errorProcessingVideo": {
		Uzbek:   "❌ Video qayta ishlashda xatolik",
		Russian: "❌ Ошибка при обработке видео",
		English: "❌ Error processing video",
	},
	"errorProcessingYouTube": {
		Uzbek:   "❌ YouTube videoni qayta ishlashda xatolik",
		Russian: "❌ Ошибка при обработке YouTube видео",
		English: "❌ Error processing YouTube video",
	},
	"errorProcessingInstagram": {
		Uzbek:   "❌ Instagram videoni qayta ishlashda xatolik",
		Russian: "❌ Ошибка при обработке Instagram видео",
		English: "❌ Error processing Instagram video",
	},
	"errorProcessingFile": {
		Uzbek:   "❌ Faylni qayta ishlashda xatolik",
		Russian: "❌ Ошибка при обработке файла",
		English: "❌ Error processing file",
	},
	"errorGeneral": {
		Uzbek:   "❌ Nimadir xato ketdi",
		Russian: "❌ Что-то пошло не так",
		English: "❌ Something went wrong",
	},
	"videoIdNotFound": {
		Uzbek:   "❌ Video ID topilmadi",
		Russian: "❌ ID видео не найдено",
		English: "❌ Video ID not found",
	},
	"choosingFormat": {
		Uzbek:   "Formatni tanlang:",
		Russian: "Выберите формат:",
		English: "Choose format:",
	},
	"roundVideo": {
		Uzbek:   "⭕️ Doira video",
		Russian: "⭕️ Круглое видео",
		English: "⭕️ Round video",
	},
	"regularVideo": {
		Uzbek:   "📹 Oddiy video",
		Russian: "📹 Обычное видео",
		English: "📹 Regular video",
	},
	"processingPart": {
		Uzbek:   "⏳ Qism qayta ishlanmoqda %s dan %s...",
		Russian: "⏳ Обработка части %s из %s...",
		English: "⏳ Processing part %s of %s...",
	},
	"videoLongerThanMinute": {
		Uzbek:   "Video 1 daqiqadan uzun (%s sek). %s ta video-doiraga bo'linadi 🎬",
		Russian: "Видео длиннее 1 минуты (%s сек). Будет разделено на %s видео-кружков 🎬",
		English: "Video is longer than 1 minute (%s sec). It will be split into %s video circles 🎬",
	},
	"videoNoteSendFailed": {
		Uzbek:   "❌ Video-doirani yuborib bo'lmadi",
		Russian: "❌ Не удалось отправить видео-кружок",
		English: "❌ Failed to send the video circle",
	},
	"done": {
		Uzbek:   "✅ Tayyor!",
		Russian: "✅ Готово!",
		English: "✅ Done!",
	},
	"languageChanged": {
		Uzbek:   "✅ Til o'zbekchaga o'zgartirildi",
		Russian: "✅ Язык изменен на русский",
		English: "✅ Language changed to English",
	},
	"chooseLanguage": {
		Uzbek:   "Tilni tanlang:",
		Russian: "Выберите язык:",
		English: "Choose language:",
	},
}
