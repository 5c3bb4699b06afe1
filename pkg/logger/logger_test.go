package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInit(t *testing.T) {
	Convey("Given the text format", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		So(Get(), ShouldNotBeNil)

		Get().Info(context.Background(), "hello", String("k", "v"))
		So(buf.String(), ShouldContainSubstring, "msg=hello")
		So(buf.String(), ShouldContainSubstring, "k=v")
		So(buf.String(), ShouldContainSubstring, "logger_test.go")
	})

	Convey("Given the json format", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat("JSON"), WithWriter(&buf)), ShouldBeNil)

		Named("engine").Warn(context.Background(), "no eligible candidates",
			Int("pool", 3),
			Bool("filtered", true),
			Strings("excluded", []string{"a", "b"}),
			Duration("took", time.Millisecond),
			Error(errors.New("boom")),
		)

		var rec map[string]any
		So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
		So(rec["level"], ShouldEqual, "WARN")
		group, ok := rec["engine"].(map[string]any)
		So(ok, ShouldBeTrue)
		So(group["pool"], ShouldEqual, 3.0)
		So(group["filtered"], ShouldEqual, true)
		So(group["error"], ShouldEqual, "boom")
	})

	Convey("Given an unknown format", t, func() {
		So(Init(WithFormat("xml")), ShouldNotBeNil)
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When the level is error", func() {
			So(SetLevelString("ERROR"), ShouldBeNil)
			Get().Info(ctx, "quiet")
			Get().Error(ctx, "loud")
			So(buf.String(), ShouldNotContainSubstring, "quiet")
			So(buf.String(), ShouldContainSubstring, "loud")
		})

		Convey("When the level is debug", func() {
			So(SetLevelString(" debug "), ShouldBeNil)
			Get().Debug(ctx, "detail")
			So(strings.Count(buf.String(), "detail"), ShouldEqual, 1)
		})

		Convey("When the level is unknown", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})

		So(Sync(), ShouldBeNil)
	})
}
