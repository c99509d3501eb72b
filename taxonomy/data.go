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

package taxonomy

// NLPIR is the complete tagset of the NLPIR/ICTCLAS segmentation
// engine. All the codes are authored lowercase. The taxonomy is
// built once during package initialization and never modified.
var NLPIR = mustBuild(NodeMap{
	"n": {NameZh: "名词", NameEn: "noun", Children: NodeMap{
		"nr": {NameZh: "人名", NameEn: "personal name", Children: NodeMap{
			"nr1": {NameZh: "汉语姓氏", NameEn: "Chinese surname"},
			"nr2": {NameZh: "汉语名字", NameEn: "Chinese given name"},
			"nrj": {NameZh: "日语人名", NameEn: "Japanese personal name"},
			"nrf": {NameZh: "音译人名", NameEn: "transcribed personal name"},
		}},
		"ns": {NameZh: "地名", NameEn: "toponym", Children: NodeMap{
			"nsf": {NameZh: "音译地名", NameEn: "transcribed toponym"},
		}},
		"nt": {NameZh: "机构团体名", NameEn: "organization/group name"},
		"nz": {NameZh: "其它专名", NameEn: "other proper noun"},
		"nl": {NameZh: "名词性惯用语", NameEn: "noun phrase"},
		"ng": {NameZh: "名词性语素", NameEn: "noun morpheme"},
	}},
	"t": {NameZh: "时间词", NameEn: "time word", Children: NodeMap{
		"tg": {NameZh: "时间词性语素", NameEn: "time morpheme"},
	}},
	"s": {NameZh: "处所词", NameEn: "locative word"},
	"f": {NameZh: "方位词", NameEn: "noun of locality"},
	"v": {NameZh: "动词", NameEn: "verb", Children: NodeMap{
		"vd":   {NameZh: "副动词", NameEn: "auxiliary verb"},
		"vn":   {NameZh: "名动词", NameEn: "noun-verb"},
		"vshi": {NameZh: "动词\"是\"", NameEn: "verb 是"},
		"vyou": {NameZh: "动词\"有\"", NameEn: "verb 有"},
		"vf":   {NameZh: "趋向动词", NameEn: "directional verb"},
		"vx":   {NameZh: "行事动词", NameEn: "performative verb"},
		"vi":   {NameZh: "不及物动词", NameEn: "intransitive verb"},
		"vl":   {NameZh: "动词性惯用语", NameEn: "verb phrase"},
		"vg":   {NameZh: "动词性语素", NameEn: "verb morpheme"},
	}},
	"a": {NameZh: "形容词", NameEn: "adjective", Children: NodeMap{
		"ad": {NameZh: "副形词", NameEn: "auxiliary adjective"},
		"an": {NameZh: "名形词", NameEn: "noun-adjective"},
		"ag": {NameZh: "形容词性语素", NameEn: "adjective morpheme"},
		"al": {NameZh: "形容词性惯用语", NameEn: "adjective phrase"},
	}},
	"b": {NameZh: "区别词", NameEn: "distinguishing word", Children: NodeMap{
		"bl": {NameZh: "区别词性惯用语", NameEn: "distinguishing phrase"},
	}},
	"z": {NameZh: "状态词", NameEn: "status word"},
	"r": {NameZh: "代词", NameEn: "pronoun", Children: NodeMap{
		"rr": {NameZh: "人称代词", NameEn: "personal pronoun"},
		"rz": {NameZh: "指示代词", NameEn: "demonstrative pronoun", Children: NodeMap{
			"rzt": {NameZh: "时间指示代词", NameEn: "temporal demonstrative pronoun"},
			"rzs": {NameZh: "处所指示代词", NameEn: "locative demonstrative pronoun"},
			"rzv": {NameZh: "谓词性指示代词", NameEn: "predicate demonstrative pronoun"},
		}},
		"ry": {NameZh: "疑问代词", NameEn: "interrogative pronoun", Children: NodeMap{
			"ryt": {NameZh: "时间疑问代词", NameEn: "temporal interrogative pronoun"},
			"rys": {NameZh: "处所疑问代词", NameEn: "locative interrogative pronoun"},
			"ryv": {NameZh: "谓词性疑问代词", NameEn: "predicate interrogative pronoun"},
		}},
		"rg": {NameZh: "代词性语素", NameEn: "pronoun morpheme"},
	}},
	"m": {NameZh: "数词", NameEn: "numeral", Children: NodeMap{
		"mq": {NameZh: "数量词", NameEn: "numeral-plus-classifier compound"},
	}},
	"q": {NameZh: "量词", NameEn: "classifier", Children: NodeMap{
		"qv": {NameZh: "动量词", NameEn: "verbal classifier"},
		"qt": {NameZh: "时量词", NameEn: "temporal classifier"},
	}},
	"d": {NameZh: "副词", NameEn: "adverb"},
	"p": {NameZh: "介词", NameEn: "preposition", Children: NodeMap{
		"pba":  {NameZh: "介词“把”", NameEn: "preposition 把"},
		"pbei": {NameZh: "介词“被”", NameEn: "preposition 被"},
	}},
	"c": {NameZh: "连词", NameEn: "conjunction", Children: NodeMap{
		"cc": {NameZh: "并列连词", NameEn: "coordinating conjunction"},
	}},
	"u": {NameZh: "助词", NameEn: "particle", Children: NodeMap{
		"uzhe":  {NameZh: "着", NameEn: "particle 着"},
		"ule":   {NameZh: "了／喽", NameEn: "particle 了/喽"},
		"uguo":  {NameZh: "过", NameEn: "particle 过"},
		"ude1":  {NameZh: "的／底", NameEn: "particle 的/底"},
		"ude2":  {NameZh: "地", NameEn: "particle 地"},
		"ude3":  {NameZh: "得", NameEn: "particle 得"},
		"usuo":  {NameZh: "所", NameEn: "particle 所"},
		"udeng": {NameZh: "等／等等／云云", NameEn: "particle 等/等等/云云"},
		"uyy":   {NameZh: "一样／一般／似的／般", NameEn: "particle 一样/一般/似的/般"},
		"udh":   {NameZh: "的话", NameEn: "particle 的话"},
		"uls":   {NameZh: "来讲／来说／而言／说来", NameEn: "particle 来讲/来说/而言/说来"},
		"uzhi":  {NameZh: "之", NameEn: "particle 之"},
		"ulian": {NameZh: "连", NameEn: "particle 连"},
	}},
	"e": {NameZh: "叹词", NameEn: "interjection"},
	"y": {NameZh: "语气词", NameEn: "modal particle"},
	"o": {NameZh: "拟声词", NameEn: "onomatopoeia"},
	"h": {NameZh: "前缀", NameEn: "prefix"},
	"k": {NameZh: "后缀", NameEn: "suffix"},
	"x": {NameZh: "字符串", NameEn: "string", Children: NodeMap{
		"xe": {NameZh: "Email字符串", NameEn: "email address"},
		"xs": {NameZh: "微博会话分隔符", NameEn: "hashtag"},
		"xm": {NameZh: "表情符合", NameEn: "emoticon"},
		"xu": {NameZh: "网址URL", NameEn: "URL"},
		"xx": {NameZh: "非语素字", NameEn: "non-morpheme character"},
	}},
	"w": {NameZh: "标点符号", NameEn: "punctuation mark", Children: NodeMap{
		"wkz": {NameZh: "左括号", NameEn: "left parenthesis/bracket"},
		"wky": {NameZh: "右括号", NameEn: "right parenthesis/bracket"},
		"wyz": {NameZh: "左引号", NameEn: "left quotation mark"},
		"wyy": {NameZh: "右引号", NameEn: "right quotation mark"},
		"wj":  {NameZh: "句号", NameEn: "period"},
		"ww":  {NameZh: "问号", NameEn: "question mark"},
		"wt":  {NameZh: "叹号", NameEn: "exclamation mark"},
		"wd":  {NameZh: "逗号", NameEn: "comma"},
		"wf":  {NameZh: "分号", NameEn: "semicolon"},
		"wn":  {NameZh: "顿号", NameEn: "enumeration comma"},
		"wm":  {NameZh: "冒号", NameEn: "colon"},
		"ws":  {NameZh: "省略号", NameEn: "ellipsis"},
		"wp":  {NameZh: "破折号", NameEn: "dash"},
		"wb":  {NameZh: "百分号千分号", NameEn: "percent/per mille sign"},
		"wh":  {NameZh: "单位符号", NameEn: "unit of measure sign"},
	}},
	"g": {NameZh: "其他", NameEn: "others", Children: NodeMap{
		"ga": {NameZh: "通讯社", NameEn: "news agency", Children: NodeMap{
			"gaas":  {NameZh: "通讯社as", NameEn: "news agency as"},
			"gaau":  {NameZh: "通讯社au", NameEn: "news agency au"},
			"gacb":  {NameZh: "通讯社cb", NameEn: "news agency cb"},
			"gacn":  {NameZh: "通讯社cn", NameEn: "news agency cn"},
			"gaes":  {NameZh: "通讯社es", NameEn: "news agency es"},
			"gafr":  {NameZh: "通讯社fr", NameEn: "news agency fr"},
			"gagm":  {NameZh: "通讯社gm", NameEn: "news agency gm"},
			"gahk":  {NameZh: "通讯社hk", NameEn: "news agency hk"},
			"gaid":  {NameZh: "通讯社id", NameEn: "news agency id"},
			"gain":  {NameZh: "通讯社in", NameEn: "news agency in"},
			"gait":  {NameZh: "通讯社it", NameEn: "news agency it"},
			"gajp":  {NameZh: "通讯社jp", NameEn: "news agency jp"},
			"gakr":  {NameZh: "通讯社kr", NameEn: "news agency kr"},
			"gakrn": {NameZh: "通讯社krn", NameEn: "news agency krn"},
			"game":  {NameZh: "通讯社me", NameEn: "news agency me"},
			"gars":  {NameZh: "通讯社rs", NameEn: "news agency rs"},
			"gatw":  {NameZh: "通讯社tw", NameEn: "news agency tw"},
			"gauk":  {NameZh: "通讯社uk", NameEn: "news agency uk"},
			"gaus":  {NameZh: "通讯社us", NameEn: "news agency us"},
			"gayr":  {NameZh: "通讯社yr", NameEn: "news agency yr"},
		}},
		"gjtgj": {NameZh: "车辆", NameEn: "vehicle"},
		"gms":   {NameZh: "食物", NameEn: "food"},
		"gn": {NameZh: "新闻", NameEn: "news", Children: NodeMap{
			"gnan":  {NameZh: "新闻an", NameEn: "news an"},
			"gnbj":  {NameZh: "新闻bj", NameEn: "news bj"},
			"gncq":  {NameZh: "新闻cq", NameEn: "news cq"},
			"gndq":  {NameZh: "新闻dq", NameEn: "news dq"},
			"gnfj":  {NameZh: "新闻fj", NameEn: "news fj"},
			"gngd":  {NameZh: "新闻gd", NameEn: "news gd"},
			"gngs":  {NameZh: "新闻gs", NameEn: "news gs"},
			"gngx":  {NameZh: "新闻gx", NameEn: "news gx"},
			"gngz":  {NameZh: "新闻gz", NameEn: "news gz"},
			"gnhan": {NameZh: "新闻han", NameEn: "news han"},
			"gnheb": {NameZh: "新闻heb", NameEn: "news heb"},
			"gnhen": {NameZh: "新闻hen", NameEn: "news hen"},
			"gnhk":  {NameZh: "新闻hk", NameEn: "news hk"},
			"gnhl":  {NameZh: "新闻hl", NameEn: "news hl"},
			"gnhub": {NameZh: "新闻hub", NameEn: "news hub"},
			"gnhun": {NameZh: "新闻hun", NameEn: "news hun"},
			"gnjl":  {NameZh: "新闻jl", NameEn: "news jl"},
			"gnjs":  {NameZh: "新闻js", NameEn: "news js"},
			"gnjx":  {NameZh: "新闻jx", NameEn: "news jx"},
			"gnln":  {NameZh: "新闻ln", NameEn: "news ln"},
			"gnnx":  {NameZh: "新闻nx", NameEn: "news nx"},
			"gnqg":  {NameZh: "新闻qg", NameEn: "news qg"},
			"gnsa":  {NameZh: "新闻sa", NameEn: "news sa"},
			"gnsc":  {NameZh: "新闻sc", NameEn: "news sc"},
			"gnsd":  {NameZh: "新闻sd", NameEn: "news sd"},
			"gnsh":  {NameZh: "新闻sh", NameEn: "news sh"},
			"gnsx":  {NameZh: "新闻sx", NameEn: "news sx"},
			"gntj":  {NameZh: "新闻tj", NameEn: "news tj"},
			"gntw":  {NameZh: "新闻tw", NameEn: "news tw"},
			"gnxj":  {NameZh: "新闻xj", NameEn: "news xj"},
			"gnxz":  {NameZh: "新闻xz", NameEn: "news xz"},
			"gnyn":  {NameZh: "新闻yn", NameEn: "news yn"},
			"gnzj":  {NameZh: "新闻zj", NameEn: "news zj"},
			"gnzy":  {NameZh: "新闻zy", NameEn: "news zy"},
		}},
		"gr": {NameZh: "广播电台", NameEn: "radio station", Children: NodeMap{
			"grc":   {NameZh: "广播电台c", NameEn: "radio station c"},
			"grjyy": {NameZh: "广播电台jyy", NameEn: "radio station jyy"},
			"grqg":  {NameZh: "广播电台qg", NameEn: "radio station qg"},
			"grs":   {NameZh: "广播电台s", NameEn: "radio station s"},
		}},
		"gt": {NameZh: "电视台", NameEn: "tv station", Children: NodeMap{
			"gtc":  {NameZh: "电视台c", NameEn: "tv station c"},
			"gthk": {NameZh: "电视台hk", NameEn: "tv station hk"},
			"gtqg": {NameZh: "电视台qg", NameEn: "tv station qg"},
			"gts":  {NameZh: "电视台s", NameEn: "tv station s"},
			"gtw":  {NameZh: "电视台w", NameEn: "tv station w"},
		}},
		"gw": {NameZh: "网站", NameEn: "website", Children: NodeMap{
			"gwah":  {NameZh: "网站ah", NameEn: "website ah"},
			"gwbj":  {NameZh: "网站bj", NameEn: "website bj"},
			"gwcj":  {NameZh: "网站cj", NameEn: "website cj"},
			"gwcq":  {NameZh: "网站cq", NameEn: "website cq"},
			"gwdb":  {NameZh: "网站db", NameEn: "website db"},
			"gwdc":  {NameZh: "网站dc", NameEn: "website dc"},
			"gwfj":  {NameZh: "网站fj", NameEn: "website fj"},
			"gwgd":  {NameZh: "网站gd", NameEn: "website gd"},
			"gwgs":  {NameZh: "网站gs", NameEn: "website gs"},
			"gwgx":  {NameZh: "网站gx", NameEn: "website gx"},
			"gwhan": {NameZh: "网站han", NameEn: "website han"},
			"gwheb": {NameZh: "网站heb", NameEn: "website heb"},
			"gwhen": {NameZh: "网站hen", NameEn: "website hen"},
			"gwhl":  {NameZh: "网站hl", NameEn: "website hl"},
			"gwhub": {NameZh: "网站hub", NameEn: "website hub"},
			"gwhun": {NameZh: "网站hun", NameEn: "website hun"},
			"gwit":  {NameZh: "网站it", NameEn: "website it"},
			"gwnm":  {NameZh: "网站nm", NameEn: "website nm"},
			"gwqc":  {NameZh: "网站qc", NameEn: "website qc"},
			"gwqh":  {NameZh: "网站qh", NameEn: "website qh"},
			"gwqz":  {NameZh: "网站qz", NameEn: "website qz"},
			"gwsa":  {NameZh: "网站sa", NameEn: "website sa"},
			"gwsc":  {NameZh: "网站sc", NameEn: "website sc"},
			"gwsd":  {NameZh: "网站sd", NameEn: "website sd"},
			"gwsh":  {NameZh: "网站sh", NameEn: "website sh"},
			"gwss":  {NameZh: "网站ss", NameEn: "website ss"},
			"gwsx":  {NameZh: "网站sx", NameEn: "website sx"},
			"gwsz":  {NameZh: "网站sz", NameEn: "website sz"},
			"gwtj":  {NameZh: "网站tj", NameEn: "website tj"},
			"gwxj":  {NameZh: "网站xj", NameEn: "website xj"},
			"gwyn":  {NameZh: "网站yn", NameEn: "website yn"},
			"gwz":   {NameZh: "网站z", NameEn: "website z"},
			"gwzj":  {NameZh: "网站zj", NameEn: "website zj"},
		}},
	}},
})
