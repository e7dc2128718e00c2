/* Copyright 2025 Off Course Authors
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

package models

// Decoders used by the API client. Replace one to plug in another
// validation strategy for that entity.
var (
	CourseDecoder     Decoder[Course]      = DecoderFunc[Course](Decode[Course])
	AssetDecoder      Decoder[Asset]       = DecoderFunc[Asset](Decode[Asset])
	TagDecoder        Decoder[Tag]         = DecoderFunc[Tag](Decode[Tag])
	CourseTagDecoder  Decoder[CourseTag]   = DecoderFunc[CourseTag](Decode[CourseTag])
	CourseTagsDecoder Decoder[[]CourseTag] = DecoderFunc[[]CourseTag](Decode[[]CourseTag])
	ScanDecoder       Decoder[Scan]        = DecoderFunc[Scan](Decode[Scan])
	LogDecoder        Decoder[Log]         = DecoderFunc[Log](Decode[Log])
	LogTypesDecoder   Decoder[[]string]    = DecoderFunc[[]string](Decode[[]string])
	UserDecoder       Decoder[User]        = DecoderFunc[User](Decode[User])
	FileSystemDecoder Decoder[FileSystem]  = DecoderFunc[FileSystem](Decode[FileSystem])
)
