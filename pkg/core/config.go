/*
 * Copyright 2026 Bindwatch Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import (
	"context"
	"fmt"

	"github.com/bindwatch/bindwatch/pkg/config"
	"github.com/bindwatch/bindwatch/pkg/models"
)

// LoadConfig reads and validates the core service configuration.
func LoadConfig(ctx context.Context, path string) (models.CoreServiceConfig, error) {
	var cfg models.CoreServiceConfig

	cfgLoader := config.NewConfig(nil)

	if err := cfgLoader.LoadAndValidate(ctx, path, &cfg); err != nil {
		return models.CoreServiceConfig{}, fmt.Errorf("failed to load core config: %w", err)
	}

	return cfg, nil
}
