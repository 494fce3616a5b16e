package employee

import "time"

type Employee struct {
	ID                      string     `json:"id"`
	CivilListNo             string     `json:"civilListNo,omitempty"`
	HRMSID                  string     `json:"hrmsId"`
	Name                    string     `json:"name"`
	FatherName              string     `json:"fatherName,omitempty"`
	Gender                  string     `json:"gender,omitempty"`
	MaritalStatus           string     `json:"maritalStatus,omitempty"`
	DOB                     *time.Time `json:"dob,omitempty"`
	Email                   string     `json:"email,omitempty"`
	Mobile                  string     `json:"mobile,omitempty"`
	PhotoPath               string     `json:"photoPath,omitempty"`
	HomeState               string     `json:"homeState,omitempty"`
	HomeDistrict            string     `json:"homeDistrict,omitempty"`
	PinCode                 string     `json:"pinCode,omitempty"`
	PermanentAddress        string     `json:"permanentAddress,omitempty"`
	CurrentAddress          string     `json:"currentAddress,omitempty"`
	Division                string     `json:"division,omitempty"`
	CollegeID               string     `json:"collegeId,omitempty"`
	CollegeName             string     `json:"collegeName,omitempty"`
	PresentPostingCollegeID string     `json:"presentPostingCollegeId,omitempty"`
	PresentPosting          string     `json:"presentPosting,omitempty"`
	Branch                  string     `json:"branch,omitempty"`
	CurrentDesignation      string     `json:"currentDesignation,omitempty"`
	BPSCAdvtNo              string     `json:"bpscAdvtNo,omitempty"`
	SeniorityOverallRank    *int       `json:"seniorityOverallRank,omitempty"`
	SelectionCategory       string     `json:"selectionCategory,omitempty"`
	ActualCategory          string     `json:"actualCategory,omitempty"`
	DisabilityQuota         bool       `json:"disabilityQuota"`
	DisabilityDetails       string     `json:"disabilityDetails,omitempty"`
	AppointmentText         string     `json:"appointmentText,omitempty"`
	AppointmentOrderNo      string     `json:"appointmentOrderNo,omitempty"`
	DateJoining             *time.Time `json:"dateJoining,omitempty"`
	DateConfirmation        *time.Time `json:"dateConfirmation,omitempty"`
	DateRetirement          *time.Time `json:"dateRetirement,omitempty"`
	PranGPFNo               string     `json:"pranGpfNo,omitempty"`
	UserID                  string     `json:"userId,omitempty"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

// Filter narrows the staff register listing; all values are
// case-insensitive substring matches.
type Filter struct {
	HRMSID  string
	Branch  string
	College string
}
