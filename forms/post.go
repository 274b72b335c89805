package forms

import (
	"strconv"
	"strings"
	"yatube/models"
)

type PostForm struct {
	Text  string `form:"text" json:"text" validate:"required"`
	Group string `form:"group" json:"group"`

	// GroupID is set by Validate when a known group was picked
	GroupID *uint64 `form:"-" json:"-"`
}

// PostFormFrom prefills the form with an existing post
func PostFormFrom(p *models.Post) PostForm {
	f := PostForm{Text: p.Text, GroupID: p.GroupID}
	if p.GroupID != nil {
		f.Group = strconv.FormatUint(*p.GroupID, 10)
	}
	return f
}

func (f *PostForm) Clean() {
	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)
}

func (f *PostForm) Validate() Errors {
	errs := validateStruct(f)
	f.GroupID = nil
	if f.Group == "" {
		return errs
	}
	id, err := strconv.ParseUint(f.Group, 10, 64)
	if err != nil {
		errs.Add("group", MsgInvalidChoice)
		return errs
	}
	if _, err := models.GroupByID(id); err != nil {
		errs.Add("group", MsgInvalidChoice)
		return errs
	}
	f.GroupID = &id
	return errs
}

type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required"`
}

func (f *CommentForm) Clean() {
	f.Text = strings.TrimSpace(f.Text)
}

func (f *CommentForm) Validate() Errors {
	return validateStruct(f)
}
