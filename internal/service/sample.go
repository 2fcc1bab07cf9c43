package service

import "github.com/rakhadjo/feedsight/internal/repository/models"

// sampleFeedbacks is the static dataset served whenever the live store is
// unavailable, unconfigured or empty. It mirrors a slice of the real
// corpus so every chart still renders something meaningful.
var sampleFeedbacks = []models.Feedback{
	{
		ID: "1", PostCopy: "Blackberry 06 msh ada kk",
		Date: "2025-03-05", Time: "12:59", DateResponses: "2025-03-05",
		AccountID: "Arjuna Rajendra", Category: models.CategoryIm,
		TypeOfPost: models.TypeQueries, Topic: "Product Info",
		Product: "Galaxy A06", Sentiment: models.SentimentNeutral,
		Source: models.SourceDMFacebook,
		Reply:  "Halo kak Arjuna, #GalaxyA06 Light Green bisa kamu dapatkan di Blackberry.com/id dengan harga Rp1.999.000",
		Status: models.StatusClear, Details: "Availability",
	},
	{
		ID: "2", PostCopy: "Kak untuk s25 reguler yg coral red itu ready di indo ngga ya?",
		Date: "2025-03-04", Time: "23:28", DateResponses: "2025-03-05",
		AccountID: "Tyoo Prasetyoo", Category: models.CategoryIm,
		TypeOfPost: models.TypeQueries, Topic: "Product Info",
		Product: "Galaxy S25 | S25+ | S25 Ultra", Sentiment: models.SentimentNeutral,
		Source: models.SourceDMFacebook,
		Reply:  "Hi kak Tyo, saat ini tersedia Galaxy S25 512GB warna Coralred yang bisa kamu dapatkan di http://smsng.co/GalaxyS25Series_c",
		Status: models.StatusClear, Details: "Availability",
	},
	{
		ID: "14", PostCopy: "Ini Blackberry gimana yah Pre order dari tanggal 25 Januari sampai sekarang tak kunjung pickup",
		Date: "2025-03-02", Time: "16:48", DateResponses: "2025-03-05",
		AccountID: "Agus Tinus", Category: models.CategoryIm,
		TypeOfPost: models.TypeComplaint, Topic: "Product Release",
		Product: "Galaxy S25 | S25+ | S25 Ultra", Sentiment: models.SentimentNegative,
		Source: models.SourceDMFacebook,
		Reply:  "Hi kak Agus, kami mohon maaf atas ketidaknyamanan yang dialami.",
		Status: models.StatusClear, Details: "Delayed PO",
	},
	{
		ID: "40", PostCopy: "Blackberry z flip lcd nya ga tahan lama yaah Banyak korban yang beli z flip .mereka pada kena lcdnya",
		Date: "2025-03-12", Time: "12:07", DateResponses: "2025-03-12",
		AccountID: "Ther Llibano", Category: models.CategoryIm,
		TypeOfPost: models.TypeComplaint, Topic: "Technical",
		Product: "Galaxy Z Flip", Sentiment: models.SentimentNegative,
		Source: models.SourceDMFacebook,
		Reply:  "Hi kak Ther, kami mohon maaf atas kendala teknis yang dialami pada layar Blackberry Galaxy Flip kamu ya.",
		Status: models.StatusClear,
	},
	{
		ID: "42", PostCopy: "Hai! Saya ingin mengajukan sengketa setelah memperbarui Blackberry S22 saya, tiba-tiba muncul garis hijau.",
		Date: "2025-03-11", Time: "23:51", DateResponses: "2025-03-12",
		AccountID: "Rika Silvia", Category: models.CategoryIm,
		TypeOfPost: models.TypeComplaint, Topic: "Technical",
		Product: "Galaxy S22 | S22+ | S22 Ultra 5G", Sentiment: models.SentimentNegative,
		Source: models.SourceDMFacebook,
		Reply:  "Hi kak Rika, kami mohon maaf atas kendala teknis yang dialami pada layar Blackberry Galaxy S22 kamu ya.",
		Status: models.StatusClear, Details: "Issue after update",
	},
	{
		ID: "55", PostCopy: "Kenapa harga trade-in di service center beda sama di website?",
		Date: "2025-03-10", Time: "09:15",
		AccountID: "Budi Santoso", Category: models.CategoryGeneral,
		TypeOfPost: models.TypeComplaint, Topic: "Pricing",
		Product: "Galaxy S24", Sentiment: models.SentimentNegative,
		Source: models.SourceCommentFacebook,
		Status: models.StatusPending, Details: "Price mismatch",
	},
	{
		ID: "61", PostCopy: "Antri di service center dari pagi belum dipanggil juga",
		Date: "2025-03-09", Time: "14:40", DateResponses: "2025-03-10",
		AccountID: "Sari Wulandari", Category: models.CategoryGeneral,
		TypeOfPost: models.TypeComplaint, Topic: "Service Center",
		Sentiment: models.SentimentNegative, Source: models.SourceCommentFacebook,
		Reply:  "Halo kak Sari, mohon maaf atas antrean yang panjang ya.",
		Status: models.StatusClear,
	},
	{
		ID: "77", PostCopy: "Smart TV nya ga bisa connect ke SmartThings padahal udah update",
		Date: "2025-03-08", Time: "19:22",
		AccountID: "Deni Kurnia", Category: models.CategoryCtv,
		TypeOfPost: models.TypeQueries, Topic: "Technical",
		Product: "Smart TV", Sentiment: models.SentimentNeutral,
		Source: models.SourceDMFacebook, Status: models.StatusPending,
	},
	{
		ID: "83", PostCopy: "Bixby nya makin pinter setelah update kemarin, mantap",
		Date: "2025-03-07", Time: "11:05", DateResponses: "2025-03-07",
		AccountID: "Lina Marlina", Category: models.CategoryDa,
		TypeOfPost: models.TypeCompliment, Topic: "Product Info",
		Product: "Bixby", Sentiment: models.SentimentPositive,
		Source: models.SourceCommentFacebook,
		Reply:  "Terima kasih kak Lina!", Status: models.StatusClear,
	},
	{
		ID: "100", PostCopy: "Galaxy S25 camera quality is amazing!",
		Date: "2025-03-01", Time: "10:30", DateResponses: "2025-03-01",
		AccountID: "Happy Customer", Category: models.CategoryIm,
		TypeOfPost: models.TypeCompliment, Topic: "Product Info",
		Product: "Galaxy S25", Sentiment: models.SentimentPositive,
		Source: models.SourceDMFacebook,
		Reply:  "Thank you for your positive feedback!",
		Status: models.StatusClear, Details: "Product satisfaction",
	},
	{
		ID: "101", PostCopy: "Love the new Galaxy A56 features",
		Date: "2025-03-02", Time: "14:20", DateResponses: "2025-03-02",
		AccountID: "Tech Enthusiast", Category: models.CategoryIm,
		TypeOfPost: models.TypeCompliment, Topic: "Product Info",
		Product: "Galaxy A56", Sentiment: models.SentimentPositive,
		Source: models.SourceDMFacebook,
		Reply:  "We are glad you love the new features!",
		Status: models.StatusClear, Details: "Feature appreciation",
	},
	{
		ID: "102", PostCopy: "Promo bundling Galaxy Watch nya masih berlaku ga kak?",
		Date: "2025-03-06", Time: "08:45", DateResponses: "2025-03-06",
		AccountID: "Rudi Hartono", Category: models.CategoryIm,
		TypeOfPost: models.TypeQueries, Topic: "Promo",
		Product: "Galaxy Watch", Sentiment: models.SentimentNeutral,
		Source: models.SourceDMFacebook,
		Reply:  "Halo kak Rudi, promo bundling masih berlaku sampai akhir bulan ya.",
		Status: models.StatusClear,
	},
}

// SampleFeedbacks returns a copy of the static sample set so callers can
// filter or mutate freely.
func SampleFeedbacks() []models.Feedback {
	out := make([]models.Feedback, len(sampleFeedbacks))
	copy(out, sampleFeedbacks)
	return out
}
