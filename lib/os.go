/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// HandleInterrupt blocks until the process receives SIGINT or SIGTERM, then calls
// each shutdown function in turn.
func HandleInterrupt(shutdown ...func(context.Context) error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	handleSignal(c, shutdown...)
}

func handleSignal(c <-chan os.Signal, shutdown ...func(context.Context) error) {
	sig := <-c
	log.Info().Str("signal", sig.String()).Msg("process interrupted, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, f := range shutdown {
		if err := f(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
