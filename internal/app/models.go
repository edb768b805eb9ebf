package app

type validateIntervalsReq struct {
	SelectedDate string `json:"selectedDate" binding:"required"`
}

type registerReservationReq struct {
	TeacherName     string `json:"teacherName" binding:"required"`
	Program         string `json:"program"`
	Subject         string `json:"subject" binding:"required"`
	ReservationDate string `json:"reservationDate" binding:"required"`
	TimeSlotID      int    `json:"timeSlotId" binding:"required"`
	Observations    string `json:"observations"`
	// Client-reported submission timestamp; recorded verbatim in the log row
	// when present, server time in the civil zone otherwise.
	CurrentDatetime string `json:"currentDatetime"`
}
