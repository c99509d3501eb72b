// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ictag/cnf"
	"ictag/debug"
	"ictag/docs"
	"ictag/general"
	"ictag/jobs"
	"ictag/root"
	"ictag/segmenter"
	"ictag/taxonomy"
	"ictag/userdict"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// @title           ICTAG - ICTCLAS Tagset Annotation Gateway
// @description     A service resolving NLPIR/ICTCLAS part of speech codes to hierarchical bilingual names, segmenting and annotating Chinese texts and maintaining a user dictionary for the segmentation engine.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost
// @BasePath  /

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	version := general.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ICTAG - ICTCLAS Tagset Annotation Gateway\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("ictag %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)
	log.Info().Msg("Starting ICTAG")
	cnf.ApplyDefaults(conf)

	docs.SwaggerInfo.Version = version.Version
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	storage, err := userdict.OpenStorage(conf.UserDict)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer storage.Close()
	log.Info().Str("dbPath", conf.UserDict.DBPath).Msg("opened user dictionary storage")

	segService, err := segmenter.NewService()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	dictData, err := storage.ExportDictData()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := segService.LoadEntries(dictData); err != nil {
		log.Fatal().Err(err).Send()
	}

	if !conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	rootActions := root.Actions{Version: version, Conf: conf}

	jobActions := jobs.NewActions(conf.Jobs, conf.Language, ctx)

	taxonomyActions := taxonomy.NewActions()
	segmenterActions := segmenter.NewActions(segService)
	userdictActions := userdict.NewActions(storage, segService, jobActions)

	engine.GET(
		"/", rootActions.RootAction)
	engine.GET(
		"/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET(
		"/posTags", taxonomyActions.TagsetTree)
	engine.GET(
		"/posTags/:code", taxonomyActions.ResolveTag)
	engine.POST(
		"/segmentation", segmenterActions.Segmentation)
	engine.GET(
		"/dictionary/words", userdictActions.Words)
	engine.GET(
		"/dictionary/words/:word", userdictActions.GetWord)
	engine.PUT(
		"/dictionary/words/:word", userdictActions.PutWord)
	engine.DELETE(
		"/dictionary/words/:word", userdictActions.DeleteWord)
	engine.POST(
		"/dictionary/textScan", userdictActions.TextScan)

	engine.GET(
		"/jobs", jobActions.JobList)
	engine.GET(
		"/jobs/:jobId", jobActions.JobInfo)
	engine.DELETE(
		"/jobs/:jobId", jobActions.Delete)
	engine.GET(
		"/jobs/:jobId/clearIfFinished", jobActions.ClearIfFinished)

	if conf.Logging.Level.IsDebugMode() {
		debugActions := debug.NewActions(jobActions)
		engine.POST("/debug/createJob", debugActions.CreateDummyJob)
		engine.POST("/debug/finishJob/:jobId", debugActions.FinishDummyJob)
		engine.GET("/debug/taxonomyDump", debugActions.TaxonomyDump)
	}

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown requested")

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
