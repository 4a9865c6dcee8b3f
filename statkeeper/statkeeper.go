package statkeeper

import (
	"github.com/stathat/go"
)

type StatKeeper interface {
	RenderAttempt()
	RenderComplete()
	RenderFormatReject()
	RenderLoadFail()
	MojangRequestOK()
	MojangRequestFail()
	McRequestOK()
	McRequestFail()
}

type VoidStatKeeper struct {
}

func (VoidStatKeeper) RenderAttempt()      {}
func (VoidStatKeeper) RenderComplete()     {}
func (VoidStatKeeper) RenderFormatReject() {}
func (VoidStatKeeper) RenderLoadFail()     {}
func (VoidStatKeeper) MojangRequestOK()    {}
func (VoidStatKeeper) MojangRequestFail()  {}
func (VoidStatKeeper) McRequestOK()        {}
func (VoidStatKeeper) McRequestFail()      {}

type StatHatStatKeeper struct {
	ezKey string
	post  func(name, ezKey string, count int) error
}

func NewStatHatStatKeeper(ezKey string) *StatHatStatKeeper {
	return &StatHatStatKeeper{
		ezKey: ezKey,
		post:  stathat.PostEZCount,
	}
}

func (sk *StatHatStatKeeper) count(name string, count int) {
	sk.post(name, sk.ezKey, count)
}

func (sk *StatHatStatKeeper) RenderAttempt() {
	sk.count("render start", 1)
}

func (sk *StatHatStatKeeper) RenderComplete() {
	sk.count("render complete", 1)
}

func (sk *StatHatStatKeeper) RenderFormatReject() {
	sk.count("render invalid format", 1)
}

func (sk *StatHatStatKeeper) RenderLoadFail() {
	sk.count("render load fail", 1)
}

func (sk *StatHatStatKeeper) MojangRequestOK() {
	sk.count("mojang request ok", 1)
}

func (sk *StatHatStatKeeper) MojangRequestFail() {
	sk.count("mojang request fail", 1)
}

func (sk *StatHatStatKeeper) McRequestOK() {
	sk.count("minecraft request ok", 1)
}

func (sk *StatHatStatKeeper) McRequestFail() {
	sk.count("minecraft request fail", 1)
}

var GLOBAL StatKeeper = VoidStatKeeper{}
